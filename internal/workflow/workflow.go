package workflow

import (
	"DineInWithSyrve/internal/order"
	"DineInWithSyrve/internal/prompt"
	"DineInWithSyrve/internal/syrveapi"
	"DineInWithSyrve/pkg/logging"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Workflow - конвейер создания заказа: токен -> организация -> терминальная
// группа -> стол -> тип оплаты -> данные заказа -> отправка. Каждый шаг
// ограничен выбором предыдущего; назад и повторно шаги не выполняются
type Workflow struct {
	api                     syrveapi.SYRVEAPI
	prompter                prompt.Prompter
	apiLogin                string
	transportToFrontTimeout int
	out                     io.Writer
}

func New(api syrveapi.SYRVEAPI, prompter prompt.Prompter, apiLogin string, transportToFrontTimeout int, out io.Writer) *Workflow {
	return &Workflow{
		api:                     api,
		prompter:                prompter,
		apiLogin:                apiLogin,
		transportToFrontTimeout: transportToFrontTimeout,
		out:                     out,
	}
}

func (w *Workflow) say(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

func (w *Workflow) Run() error {
	logger := logging.GetLogger()
	logger.Println("Run:>Start")
	defer logger.Println("Run:>End")

	// 1) токен доступа
	token, err := w.api.GetAccessToken(w.apiLogin)
	if err != nil {
		w.say("Не удалось получить токен доступа.")
		return errors.Wrap(err, "failed GetAccessToken")
	}

	// 2) организация
	organizations, err := w.api.GetOrganizations(token)
	if err != nil {
		return errors.Wrap(err, "failed GetOrganizations")
	}
	if len(organizations) == 0 {
		w.say("Не удалось получить список организаций.")
		return nil
	}

	items := make([]string, 0, len(organizations))
	for _, org := range organizations {
		items = append(items, fmt.Sprintf("%s (ID: %s)", org.Name, org.ID))
	}
	idx, err := w.prompter.Select("Список доступных организаций:", items)
	if err != nil {
		return err
	}
	organizationID := organizations[idx].ID

	// 3) терминальная группа выбранной организации
	terminalGroups, err := w.api.GetTerminalGroups(token, []string{organizationID})
	if err != nil {
		return errors.Wrap(err, "failed GetTerminalGroups")
	}
	if len(terminalGroups) == 0 {
		w.say("Не удалось получить терминальные группы.")
		return nil
	}

	items = items[:0]
	for _, tg := range terminalGroups {
		items = append(items, fmt.Sprintf("%s (ID: %s)", tg.Name, tg.ID))
	}
	idx, err = w.prompter.Select("Доступные терминальные группы:", items)
	if err != nil {
		return err
	}
	terminalGroupID := terminalGroups[idx].ID

	// 4) стол; секции разворачиваются в один нумерованный список,
	// принадлежность секции остается в подписи
	sections, err := w.api.GetAvailableRestaurantSections(token, []string{terminalGroupID})
	if err != nil {
		return errors.Wrap(err, "failed GetAvailableRestaurantSections")
	}

	var tableItems []string
	var tableIDs []string
	for _, section := range sections {
		sectionName := section.Name
		if sectionName == "" {
			sectionName = "NoSectionName"
		}
		for _, table := range section.Tables {
			tableItems = append(tableItems, fmt.Sprintf("[%s] %s (ID: %s)", sectionName, table.Name, table.ID))
			tableIDs = append(tableIDs, table.ID)
		}
	}
	if len(tableIDs) == 0 {
		w.say("Нет доступных столов.")
		return nil
	}

	idx, err = w.prompter.Select("Доступные столы:", tableItems)
	if err != nil {
		return err
	}
	tableID := tableIDs[idx]

	// 5) тип оплаты; пустой список - не ошибка, переходим на ручной ввод
	paymentTypes, err := w.api.GetPaymentTypes(token, []string{organizationID})
	if err != nil {
		return errors.Wrap(err, "failed GetPaymentTypes")
	}

	var paymentTypeID, paymentTypeKind string
	if len(paymentTypes) > 0 {
		items = items[:0]
		for _, pt := range paymentTypes {
			items = append(items, fmt.Sprintf("%s (kind: %s) (ID: %s)", pt.Name, pt.PaymentTypeKind, pt.ID))
		}
		idx, err = w.prompter.SelectOrSkip("Доступные типы оплат:", items)
		if err != nil {
			return err
		}
		if idx < 0 {
			idx = 0
		}
		paymentTypeID = paymentTypes[idx].ID
		paymentTypeKind = paymentTypes[idx].PaymentTypeKind
	} else {
		w.say("Не удалось получить типы оплат или список пуст. Зададим paymentTypeId вручную!")
		paymentTypeID, err = w.prompter.ReadString("Введите UUID типа оплаты (paymentTypeId)")
		if err != nil {
			return err
		}
	}

	// 6) данные клиента и позиции
	customerName, err := w.prompter.ReadString("Введите имя клиента (необязательно, Enter = 'Guest')")
	if err != nil {
		return err
	}
	customerPhone, err := w.prompter.ReadString("Введите телефон клиента (необязательно, Enter = без телефона)")
	if err != nil {
		return err
	}
	productID, err := w.prompter.ReadString("Введите UUID товара (productId)")
	if err != nil {
		return err
	}
	price, err := w.prompter.ReadString("Введите цену за единицу товара")
	if err != nil {
		return err
	}
	quantity, err := w.prompter.ReadString("Введите количество (например, 1, 2.5 и т.п.)")
	if err != nil {
		return err
	}
	paymentSum, err := w.prompter.ReadString("Введите сумму платежа (или Enter для автоподстановки цены)")
	if err != nil {
		return err
	}

	// 7) сборка документа
	request, err := order.Build(&order.Selection{
		OrganizationID:  organizationID,
		TerminalGroupID: terminalGroupID,
		TableID:         tableID,
		CustomerName:    customerName,
		CustomerPhone:   customerPhone,
		ProductID:       productID,
		Price:           price,
		Quantity:        quantity,
		PaymentTypeID:   paymentTypeID,
		PaymentTypeKind: paymentTypeKind,
		PaymentSum:      paymentSum,
	}, w.transportToFrontTimeout)
	if err != nil {
		w.say("%v", err)
		return errors.Wrap(err, "failed order.Build")
	}

	// 8) отправка; ровно одна попытка
	w.say("\n==== ОТПРАВЛЯЕМ ЗАПРОС НА СОЗДАНИЕ ЗАКАЗА ====")
	response, err := w.api.CreateOrder(token, request)
	if err != nil {
		w.say("Не удалось создать заказ.")
		return errors.Wrap(err, "failed CreateOrder")
	}

	w.say("\n--- Ответ сервера при создании заказа ---")
	w.say("%s", string(response.Raw))
	w.say("\nСоздание заказа завершено.")

	return nil
}
