package timesheet

import "github.com/Jmaroja/bancodehoras/internal/domain/timesheet"

// exportSheetName matches the sheet name of the source TradePro exports.
const exportSheetName = "Ponto"

// exportHeader is the fixed 17-column layout the exporter collaborator
// re-encodes, using the source system's column titles.
var exportHeader = []string{
	"ID", "Colaborador", "Data",
	"Início (Executado)", "Almoço", "Retorno", "Saída",
	"Tempo Almoço", "Jornada",
	"Início (Planejado)", "Saída (Planejado)", "Tempo Almoço (P)", "Jornada (P)",
	"Tolerância", "Diferença", "Observações", "Status",
}

// exportRows lays the records out in the fixed export table, header first.
func exportRows(records []*timesheet.Record) [][]string {
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, exportHeader)
	for _, r := range records {
		rows = append(rows, []string{
			r.ID, r.Name, r.Date,
			r.CheckIn, r.LunchOut, r.LunchIn, r.CheckOut,
			r.LunchDuration, r.WorkedDuration,
			r.PlannedCheckIn, r.PlannedCheckOut, r.PlannedLunchDuration, r.PlannedWorkedDuration,
			r.Tolerance, r.Deviation, r.Notes, string(r.Status),
		})
	}
	return rows
}
