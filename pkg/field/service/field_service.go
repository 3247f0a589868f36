package service

// FieldReference is the ordered set of plot names offered on the report form.
type FieldReference interface {
	Names() []string
	Loaded() bool
}
