package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dsousa/barber-ledger/internal/domain"
)

// Консоль оператора: агенда, каталог услуг и финансовые отчёты.
// Вся логика живёт в сервисах и use case'ах, здесь только ввод-вывод
// и подтверждения разрушающих операций.

const (
	msgInvalidOption = "Opção inválida."
	msgInvalidDate   = "Data inválida, use o formato AAAA-MM-DD."
	msgInvalidTime   = "Horário inválido, use o formato HH:MM."
	msgCancelled     = "Operação cancelada."
)

// App консоль оператора
type App struct {
	in      *bufio.Scanner
	out     io.Writer
	catalog Catalog
	sched   Schedule
	builder AppointmentBuilder
	history HistoryLookup
	reports Reporter
	share   MessageComposer
	logger  Logger

	// now подменяется в тестах
	now func() time.Time
}

// NewApp создает консоль оператора
func NewApp(
	in io.Reader,
	out io.Writer,
	catalog Catalog,
	sched Schedule,
	builder AppointmentBuilder,
	history HistoryLookup,
	reports Reporter,
	share MessageComposer,
	logger Logger,
) *App {
	return &App{
		in:      bufio.NewScanner(in),
		out:     out,
		catalog: catalog,
		sched:   sched,
		builder: builder,
		history: history,
		reports: reports,
		share:   share,
		logger:  logger,
		now:     time.Now,
	}
}

// Run запускает главный цикл меню. Завершается по команде оператора,
// концу ввода или отмене контекста.
func (a *App) Run(ctx context.Context) error {
	a.printf("Sousa Barber — Painel de Controle\n")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		a.printf("\n[1] Agenda  [2] Serviços  [3] Finanças  [0] Sair\n")
		choice, ok := a.prompt("> ")
		if !ok {
			return nil
		}

		switch strings.TrimSpace(choice) {
		case "1":
			a.runAgenda(ctx)
		case "2":
			a.runServices(ctx)
		case "3":
			a.runReports(ctx)
		case "0":
			a.printf("Até logo!\n")
			return nil
		default:
			a.printf("%s\n", msgInvalidOption)
		}
	}
}

// prompt выводит приглашение и читает строку; второй результат false на EOF
func (a *App) prompt(label string) (string, bool) {
	a.printf("%s", label)
	if !a.in.Scan() {
		return "", false
	}
	return a.in.Text(), true
}

// confirm запрашивает подтверждение разрушающей операции
func (a *App) confirm(question string) bool {
	answer, ok := a.prompt(question + " (s/n): ")
	if !ok {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(answer), "s")
}

func (a *App) printf(format string, v ...interface{}) {
	fmt.Fprintf(a.out, format, v...)
}

// promptDate читает дату, пустой ввод возвращает fallback
func (a *App) promptDate(label string, fallback time.Time) (time.Time, bool) {
	raw, ok := a.prompt(label)
	if !ok {
		return time.Time{}, false
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return domain.DateOnly(fallback), true
	}

	date, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		a.printf("%s\n", msgInvalidDate)
		return time.Time{}, false
	}
	return date, true
}

// promptFloat читает денежную сумму
func (a *App) promptFloat(label string) (float64, bool) {
	raw, ok := a.prompt(label)
	if !ok {
		return 0, false
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		a.printf("%s\n", msgInvalidOption)
		return 0, false
	}
	return value, true
}

// promptInt читает целое число
func (a *App) promptInt(label string) (int, bool) {
	raw, ok := a.prompt(label)
	if !ok {
		return 0, false
	}
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		a.printf("%s\n", msgInvalidOption)
		return 0, false
	}
	return value, true
}

func (a *App) reportOperationError(err error) {
	var msg string
	switch {
	case errors.Is(err, context.Canceled):
		msg = msgCancelled
	default:
		msg = err.Error()
	}
	a.printf("Erro: %s\n", msg)
}
