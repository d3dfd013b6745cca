package domain

var Tables = []interface{}{
	// System
	&SysConfig{},
	&AdminLog{},
	// Catalog
	&Product{},
}
