package domain

var Tables = []interface{}{
	// System
	&SysOpr{},
	// Site content
	&Product{},
	&Client{},
	&Testimonial{},
	&Contact{},
}
