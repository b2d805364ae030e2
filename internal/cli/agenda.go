package cli

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/dsousa/barber-ledger/internal/domain"
	"github.com/dsousa/barber-ledger/internal/usecase/build_appointment"
	"github.com/dsousa/barber-ledger/pkg/types"
)

// runAgenda показывает записи выбранного дня и действия над ними
func (a *App) runAgenda(ctx context.Context) {
	date, ok := a.promptDate("Data (AAAA-MM-DD, vazio = hoje): ", a.now())
	if !ok {
		return
	}

	for {
		appointments := a.sched.ForDate(date)
		a.printf("\nAgenda %s — Faturamento do dia: R$ %.2f\n",
			date.Format(domain.DateFormat), a.sched.DailyRevenue(date))

		if len(appointments) == 0 {
			a.printf("Nada agendado.\n")
		}
		for i, app := range appointments {
			status := " "
			if app.IsCompleted() {
				status = "✓"
			}
			a.printf("%2d. [%s] %s - %s  %s  R$ %.2f (%s)\n",
				i+1, status, app.StartTime, app.EndTime, app.ClientName,
				app.TotalValue, a.serviceNames(app))
		}

		a.printf("\n[n] Novo  [f] Finalizar  [e] Editar  [m] Mensagem  [x] Excluir  [enter] Voltar\n")
		choice, ok := a.prompt("> ")
		if !ok {
			return
		}

		switch strings.TrimSpace(strings.ToLower(choice)) {
		case "":
			return
		case "n":
			a.bookAppointment(ctx, date, nil)
		case "f":
			a.completeAppointment(ctx, appointments)
		case "e":
			if app, ok := a.pickAppointment(appointments); ok {
				a.bookAppointment(ctx, date, app)
			}
		case "m":
			if app, ok := a.pickAppointment(appointments); ok {
				a.printf("\n%s\n", a.share.Compose(app))
			}
		case "x":
			a.removeAppointment(ctx, appointments)
		default:
			a.printf("%s\n", msgInvalidOption)
		}
	}
}

// bookAppointment проводит оператора по созданию или редактированию записи
func (a *App) bookAppointment(ctx context.Context, date time.Time, existing *domain.Appointment) {
	defaultName := ""
	if existing != nil {
		defaultName = existing.ClientName
	}

	name, ok := a.prompt(labelWithDefault("Nome do cliente", defaultName))
	if !ok {
		return
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultName
	}

	// подсказка по истории клиента, как только имя достаточно длинное
	if history, found := a.history.Lookup(ctx, name); found {
		a.printf("Última visita: %s — Ticket médio: R$ %.2f\n",
			history.LastVisit.Format(domain.DateFormat), history.AverageTicket)
	}

	serviceIDs, ok := a.pickServices(existing)
	if !ok {
		return
	}

	suggested := a.builder.SuggestStartTime(ctx, date)
	if existing != nil && !existing.StartTime.IsZero() {
		suggested = existing.StartTime
	}
	rawTime, ok := a.prompt(labelWithDefault("Início (HH:MM)", suggested.String()))
	if !ok {
		return
	}
	rawTime = strings.TrimSpace(rawTime)
	if rawTime == "" {
		rawTime = suggested.String()
	}
	startTime, err := types.NewTimeStringFromString(rawTime)
	if err != nil {
		a.printf("%s\n", msgInvalidTime)
		return
	}

	appointment, err := a.builder.Execute(ctx, &build_appointment.Request{
		ClientName: name,
		ServiceIDs: serviceIDs,
		Date:       date,
		StartTime:  startTime,
		Existing:   existing,
	})
	if err != nil {
		a.reportOperationError(err)
		return
	}

	if existing != nil {
		err = a.sched.Update(ctx, appointment)
	} else {
		err = a.sched.Add(ctx, appointment)
	}
	if err != nil {
		a.reportOperationError(err)
		return
	}

	a.printf("Agendado: %s às %s, término %s, R$ %.2f\n",
		appointment.ClientName, appointment.StartTime, appointment.EndTime, appointment.TotalValue)
}

// pickServices выбирает услуги из каталога (номера через vírgula).
// Повторный номер добавляет услугу ещё раз.
func (a *App) pickServices(existing *domain.Appointment) ([]string, bool) {
	services := a.catalog.All()
	if len(services) == 0 {
		a.printf("Catálogo vazio: cadastre serviços primeiro.\n")
		return nil, false
	}

	a.printf("Serviços disponíveis:\n")
	for i, svc := range services {
		a.printf("%2d. %s — R$ %.2f (%d min)\n", i+1, svc.Name, svc.Price, svc.Duration)
	}

	defaultPick := ""
	if existing != nil {
		defaultPick = "atuais"
	}
	raw, ok := a.prompt(labelWithDefault("Serviços (ex: 1,3)", defaultPick))
	if !ok {
		return nil, false
	}
	raw = strings.TrimSpace(raw)
	if raw == "" && existing != nil {
		return append([]string(nil), existing.ServiceIDs...), true
	}

	ids := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		idx, ok := parseIndex(part, len(services))
		if !ok {
			a.printf("%s\n", msgInvalidOption)
			return nil, false
		}
		ids = append(ids, services[idx].ID)
	}
	if len(ids) == 0 {
		a.printf("%s\n", msgInvalidOption)
		return nil, false
	}
	return ids, true
}

// completeAppointment закрывает запись после явного подтверждения
func (a *App) completeAppointment(ctx context.Context, appointments []*domain.Appointment) {
	app, ok := a.pickAppointment(appointments)
	if !ok {
		return
	}
	if !a.confirm("Confirmar conclusão do serviço? O valor será contabilizado no faturamento") {
		a.printf("%s\n", msgCancelled)
		return
	}
	if err := a.sched.Complete(ctx, app.ID); err != nil {
		a.reportOperationError(err)
		return
	}
	a.printf("Atendimento concluído.\n")
}

// removeAppointment удаляет запись после явного подтверждения
func (a *App) removeAppointment(ctx context.Context, appointments []*domain.Appointment) {
	app, ok := a.pickAppointment(appointments)
	if !ok {
		return
	}
	if !a.confirm("Tem certeza que deseja remover este agendamento permanentemente?") {
		a.printf("%s\n", msgCancelled)
		return
	}
	if err := a.sched.Remove(ctx, app.ID); err != nil {
		a.reportOperationError(err)
		return
	}
	a.printf("Agendamento removido.\n")
}

// pickAppointment выбирает запись дня по номеру
func (a *App) pickAppointment(appointments []*domain.Appointment) (*domain.Appointment, bool) {
	if len(appointments) == 0 {
		a.printf("Nada agendado.\n")
		return nil, false
	}
	raw, ok := a.prompt("Número do agendamento: ")
	if !ok {
		return nil, false
	}
	idx, ok := parseIndex(raw, len(appointments))
	if !ok {
		a.printf("%s\n", msgInvalidOption)
		return nil, false
	}
	return appointments[idx], true
}

// serviceNames разрешает названия услуг записи; висячие ссылки пропускаются
func (a *App) serviceNames(app *domain.Appointment) string {
	names := make([]string, 0, len(app.ServiceIDs))
	for _, id := range app.ServiceIDs {
		if svc, ok := a.catalog.ByID(id); ok {
			names = append(names, svc.Name)
		}
	}
	if len(names) == 0 {
		return "serviço desconhecido"
	}
	return strings.Join(names, " + ")
}

func labelWithDefault(label, def string) string {
	if def == "" {
		return label + ": "
	}
	return label + " [" + def + "]: "
}

func parseIndex(raw string, length int) (int, bool) {
	idx, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || idx < 1 || idx > length {
		return 0, false
	}
	return idx - 1, true
}
