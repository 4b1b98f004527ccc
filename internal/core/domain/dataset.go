package domain

// Unit conversion factors applied before the log transform.
const (
	// KVToEV converts accelerating voltage from kilovolts to electron-volts.
	KVToEV = 1000.0
	// M2PerMgToCm2PerG converts cross sections from m²/mg to cm²/g.
	M2PerMgToCm2PerG = 1e7
)

// ============================================================================
// Raw dataset
// ============================================================================

// RawRow is one observation of the Misell-Burdett table: accelerating voltage
// in kV and the plural-scattering cross section (m²/mg) at each aperture.
type RawRow struct {
	VoltageKV float64 `json:"voltage_kv"`
	Sp5       float64 `json:"sp_5mrad"`
	Sp10      float64 `json:"sp_10mrad"`
	Sp15      float64 `json:"sp_15mrad"`
}

// Sp returns the cross-section column for the given aperture.
func (r RawRow) Sp(a Aperture) float64 {
	switch a {
	case Aperture5:
		return r.Sp5
	case Aperture10:
		return r.Sp10
	default:
		return r.Sp15
	}
}

// RawTable is the loaded dataset, ordered as read, immutable after load.
type RawTable []RawRow

// ============================================================================
// Log-transformed dataset
// ============================================================================

// LogRow is the unit-converted, log-transformed counterpart of a RawRow:
// LnVoltageEV = ln(1000·voltage_kV), LnSp_k = ln(1e7·sp_k).
type LogRow struct {
	LnVoltageEV float64 `json:"ln_voltage_ev"`
	LnSp5       float64 `json:"ln_sp_5"`
	LnSp10      float64 `json:"ln_sp_10"`
	LnSp15      float64 `json:"ln_sp_15"`
}

// LnSp returns the log cross-section column for the given aperture.
func (r LogRow) LnSp(a Aperture) float64 {
	switch a {
	case Aperture5:
		return r.LnSp5
	case Aperture10:
		return r.LnSp10
	default:
		return r.LnSp15
	}
}

// LogTable is the transformed dataset, row-aligned with its RawTable.
type LogTable []LogRow
