// Package validate holds the server-side field validation rules. The same
// rules are duplicated in the browser forms for cheap UX; this package is the
// authoritative check. Validators are pure functions collecting every failing
// rule so the caller can show all problems at once, and the returned messages
// are the user-facing Spanish strings rendered by the client.
package validate

import (
	"strconv"
	"strings"
)

// ProductInput carries the raw form values of a product submission. Stock and
// Price stay strings here because they arrive as multipart form fields.
type ProductInput struct {
	Name     string
	Category string
	Stock    string
	Price    string
}

// AppointmentInput carries the raw fields of an appointment request.
type AppointmentInput struct {
	Name        string
	Whatsapp    string
	CarModel    string
	Description string
	Date        string
	Time        string
}

// Product validates a full product submission. All fields are required.
func Product(in ProductInput) []string {
	var errs []string

	name := strings.TrimSpace(in.Name)
	if name == "" {
		errs = append(errs, "El nombre del producto es requerido")
	} else if len([]rune(name)) > 100 {
		errs = append(errs, "El nombre no puede exceder 100 caracteres")
	}

	if strings.TrimSpace(in.Category) == "" {
		errs = append(errs, "La categoría es requerida")
	}

	if !nonNegativeInt(in.Stock) {
		errs = append(errs, "El stock debe ser un número igual o mayor a 0")
	}

	if !nonNegativeNumber(in.Price) {
		errs = append(errs, "El precio debe ser un número igual o mayor a 0")
	}

	return errs
}

// ProductPartial validates only the fields present in a partial update.
// Keys of fields are the form field names: name, category, stock, price.
func ProductPartial(fields map[string]string) []string {
	var errs []string

	if v, ok := fields["name"]; ok {
		name := strings.TrimSpace(v)
		if name == "" {
			errs = append(errs, "El nombre del producto es requerido")
		} else if len([]rune(name)) > 100 {
			errs = append(errs, "El nombre no puede exceder 100 caracteres")
		}
	}
	if v, ok := fields["category"]; ok {
		if strings.TrimSpace(v) == "" {
			errs = append(errs, "La categoría es requerida")
		}
	}
	if v, ok := fields["stock"]; ok {
		if !nonNegativeInt(v) {
			errs = append(errs, "El stock debe ser un número igual o mayor a 0")
		}
	}
	if v, ok := fields["price"]; ok {
		if !nonNegativeNumber(v) {
			errs = append(errs, "El precio debe ser un número igual o mayor a 0")
		}
	}

	return errs
}

// Appointment validates an appointment request. The WhatsApp number is
// normalized to digits only for the length check; the stored value keeps the
// customer's original formatting.
func Appointment(in AppointmentInput) []string {
	var errs []string

	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, "El nombre es requerido")
	}

	if strings.TrimSpace(in.Whatsapp) == "" {
		errs = append(errs, "El WhatsApp es requerido")
	} else if len(Digits(in.Whatsapp)) < 10 {
		errs = append(errs, "El WhatsApp debe tener al menos 10 dígitos")
	}

	if strings.TrimSpace(in.CarModel) == "" {
		errs = append(errs, "El modelo del vehículo es requerido")
	}
	if strings.TrimSpace(in.Description) == "" {
		errs = append(errs, "La descripción del servicio es requerida")
	}
	if strings.TrimSpace(in.Date) == "" {
		errs = append(errs, "La fecha es requerida")
	}
	if strings.TrimSpace(in.Time) == "" {
		errs = append(errs, "La hora es requerida")
	}

	return errs
}

// Digits strips every non-digit rune from s.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func nonNegativeInt(s string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return err == nil && n >= 0
}

func nonNegativeNumber(s string) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil && f >= 0
}
