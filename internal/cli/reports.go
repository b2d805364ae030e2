package cli

import (
	"context"

	"github.com/dsousa/barber-ledger/internal/usecase/report"
)

// runReports показывает стандартные финансовые сводки: день, неделя, месяц
func (a *App) runReports(ctx context.Context) {
	now := a.now()

	a.printf("\nFinanceiro\n")
	a.printSummary("Ganhos Hoje", a.reports.Execute(ctx, report.Today(now)))
	a.printSummary("Resumo Semana", a.reports.Execute(ctx, report.ThisWeek(now)))
	a.printSummary("Total do Mês", a.reports.Execute(ctx, report.ThisMonth(now)))
}

func (a *App) printSummary(title string, summary report.Summary) {
	a.printf("\n%s\n", title)
	a.printf("  Valor Total:  R$ %.2f\n", summary.Total)
	a.printf("  Serviços:     %d\n", summary.Count)
	a.printf("  Ticket Médio: R$ %.2f\n", summary.Average)
}
