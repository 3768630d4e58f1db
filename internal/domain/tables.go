package domain

var Tables = []interface{}{
	&Product{},
	&Appointment{},
}
