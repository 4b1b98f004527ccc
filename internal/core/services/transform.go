package services

import (
	"fmt"
	"math"

	"scattering-report/internal/core/domain"
)

// Transform converts each raw row to eV and cm²/g and applies the natural
// logarithm element-wise. Any converted value ≤ 0 aborts the transform, since
// its logarithm is undefined.
func Transform(raw domain.RawTable) (domain.LogTable, error) {
	table := make(domain.LogTable, 0, len(raw))
	for i, row := range raw {
		ev := domain.KVToEV * row.VoltageKV
		if ev <= 0 {
			return nil, fmt.Errorf("row %d, voltage_kV=%g: %w", i, row.VoltageKV, domain.ErrNonPositiveValue)
		}
		logRow := domain.LogRow{LnVoltageEV: math.Log(ev)}
		for _, a := range domain.Apertures() {
			sp := domain.M2PerMgToCm2PerG * row.Sp(a)
			if sp <= 0 {
				return nil, fmt.Errorf("row %d, sp_%dmrad=%g: %w", i, int(a), row.Sp(a), domain.ErrNonPositiveValue)
			}
			switch a {
			case domain.Aperture5:
				logRow.LnSp5 = math.Log(sp)
			case domain.Aperture10:
				logRow.LnSp10 = math.Log(sp)
			case domain.Aperture15:
				logRow.LnSp15 = math.Log(sp)
			}
		}
		table = append(table, logRow)
	}
	return table, nil
}
