package types

// Field is one declared field of a user type, in declaration order.
type Field struct {
	Name string
	Type Type
}

// User is a user-defined record type bound to a struct declaration. Fields
// are stamped during type-name resolution, after every field's type name has
// been resolved.
type User struct {
	name   string
	pos    string
	fields []Field
}

func (u *User) Name() string       { return u.name }
func (u *User) DeclaredAt() string { return u.pos }
func (u *User) String() string     { return u.name }
func (u *User) IsNumeric() bool    { return false }
func (u *User) IsIntegral() bool   { return false }
func (*User) sealed()              {}

func (u *User) ConvertibleTo(other Type) bool {
	return Type(u) == other
}

func (u *User) Join(other Type) Type {
	if other.Name() == "string" {
		return other
	}
	return u
}

// SetFields records the declared fields. Called exactly once per
// declaration, by the type-name resolution pass.
func (u *User) SetFields(fields []Field) {
	u.fields = fields
}

// Fields returns the declared fields in declaration order.
func (u *User) Fields() []Field {
	return u.fields
}

// Field looks up a field by name.
func (u *User) Field(name string) (Type, bool) {
	for _, f := range u.fields {
		if f.Name == name {
			return f.Type, true
		}
	}
	return nil, false
}
