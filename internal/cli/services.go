package cli

import (
	"context"
	"strings"
)

// runServices показывает каталог услуг и операции над ним
func (a *App) runServices(ctx context.Context) {
	for {
		services := a.catalog.All()
		a.printf("\nServiços — Catálogo de Valores\n")
		if len(services) == 0 {
			a.printf("Catálogo vazio.\n")
		}
		for i, svc := range services {
			a.printf("%2d. %s — R$ %.2f (%d min)\n", i+1, svc.Name, svc.Price, svc.Duration)
		}

		a.printf("\n[n] Novo  [e] Editar  [x] Excluir  [enter] Voltar\n")
		choice, ok := a.prompt("> ")
		if !ok {
			return
		}

		switch strings.TrimSpace(strings.ToLower(choice)) {
		case "":
			return
		case "n":
			a.createService(ctx)
		case "e":
			a.editService(ctx)
		case "x":
			a.deleteService(ctx)
		default:
			a.printf("%s\n", msgInvalidOption)
		}
	}
}

func (a *App) createService(ctx context.Context) {
	name, price, duration, ok := a.promptServiceFields("", 0, 0)
	if !ok {
		return
	}
	svc, err := a.catalog.Create(ctx, name, price, duration)
	if err != nil {
		a.reportOperationError(err)
		return
	}
	a.printf("Serviço criado: %s\n", svc.Name)
}

func (a *App) editService(ctx context.Context) {
	services := a.catalog.All()
	if len(services) == 0 {
		a.printf("Catálogo vazio.\n")
		return
	}
	raw, ok := a.prompt("Número do serviço: ")
	if !ok {
		return
	}
	idx, ok := parseIndex(raw, len(services))
	if !ok {
		a.printf("%s\n", msgInvalidOption)
		return
	}
	current := services[idx]

	name, price, duration, ok := a.promptServiceFields(current.Name, current.Price, current.Duration)
	if !ok {
		return
	}
	if _, err := a.catalog.Update(ctx, current.ID, name, price, duration); err != nil {
		a.reportOperationError(err)
		return
	}
	a.printf("Serviço atualizado.\n")
}

// deleteService удаляет услугу из каталога.
// Существующие agendamentos не трогаются: их суммы зафиксированы,
// а ссылка на удалённую услугу дальше отображается как desconhecido.
func (a *App) deleteService(ctx context.Context) {
	services := a.catalog.All()
	if len(services) == 0 {
		a.printf("Catálogo vazio.\n")
		return
	}
	raw, ok := a.prompt("Número do serviço: ")
	if !ok {
		return
	}
	idx, ok := parseIndex(raw, len(services))
	if !ok {
		a.printf("%s\n", msgInvalidOption)
		return
	}
	if !a.confirm("Excluir o serviço " + services[idx].Name + "?") {
		a.printf("%s\n", msgCancelled)
		return
	}
	if err := a.catalog.Delete(ctx, services[idx].ID); err != nil {
		a.reportOperationError(err)
		return
	}
	a.printf("Serviço excluído.\n")
}

func (a *App) promptServiceFields(defName string, defPrice float64, defDuration int) (string, float64, int, bool) {
	name, ok := a.prompt(labelWithDefault("Nome do serviço", defName))
	if !ok {
		return "", 0, 0, false
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = defName
	}

	price, ok := a.promptFloat("Preço (R$): ")
	if !ok {
		return "", 0, 0, false
	}
	duration, ok := a.promptInt("Minutos: ")
	if !ok {
		return "", 0, 0, false
	}
	return name, price, duration, true
}
