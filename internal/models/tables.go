package models

// Tables lists every store model in migration order (referenced tables first).
var Tables = []interface{}{
	&Category{},
	&User{},
	&Product{},
	&Inventory{},
	&Review{},
}
