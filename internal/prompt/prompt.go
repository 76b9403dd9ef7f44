package prompt

import (
	"DineInWithSyrve/internal/order"
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter - все, что конвейеру нужно от оператора: проверенный индекс
// нумерованного меню либо строка как есть
type Prompter interface {
	Select(title string, items []string) (int, error)
	SelectOrSkip(title string, items []string) (int, error)
	ReadString(label string) (string, error)
}

type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *Console) printMenu(title string, items []string) {
	fmt.Fprintf(c.out, "\n%s\n", title)
	for idx, item := range items {
		fmt.Fprintf(c.out, "%d. %s\n", idx+1, item)
	}
}

// Select печатает нумерованное меню и возвращает индекс выбранного пункта
func (c *Console) Select(title string, items []string) (int, error) {
	c.printMenu(title, items)
	fmt.Fprint(c.out, "\nВведите номер: ")

	line, err := c.readLine()
	if err != nil {
		return 0, err
	}

	number, err := strconv.Atoi(line)
	if err != nil {
		return 0, &order.ValidationError{Field: "selection", Message: "введите целое число"}
	}
	if number < 1 || number > len(items) {
		return 0, &order.ValidationError{Field: "selection", Message: fmt.Sprintf("номер вне диапазона 1..%d", len(items))}
	}

	return number - 1, nil
}

// SelectOrSkip - как Select, но Enter пропускает выбор (возвращает -1),
// а нечисловой ввод откатывается к первому пункту
func (c *Console) SelectOrSkip(title string, items []string) (int, error) {
	c.printMenu(title, items)
	fmt.Fprint(c.out, "\nВведите номер (или Enter для пропуска, тогда возьмём 1-й): ")

	line, err := c.readLine()
	if err != nil {
		return 0, err
	}
	if line == "" {
		return -1, nil
	}

	number, err := strconv.Atoi(line)
	if err != nil {
		fmt.Fprintln(c.out, "Введено некорректное значение, будет использован первый пункт.")
		return 0, nil
	}
	if number < 1 || number > len(items) {
		return 0, &order.ValidationError{Field: "selection", Message: fmt.Sprintf("номер вне диапазона 1..%d", len(items))}
	}

	return number - 1, nil
}

func (c *Console) ReadString(label string) (string, error) {
	fmt.Fprintf(c.out, "%s: ", label)
	return c.readLine()
}
