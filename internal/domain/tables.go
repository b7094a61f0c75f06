package domain

var Tables = []interface{}{
	&User{},
	&Customer{},
	&Order{},
	&OrderItem{},
	&Product{},
	&RevenueStat{},
}
