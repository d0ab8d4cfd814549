/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package ftypes

// CompiledOf returns a cell carrying the specified value
func CompiledOf(v LhsValue) CompiledValue {
	return CompiledValue{value: v, typ: v.GetType()}
}

// MissingOf returns an absent cell of the specified type
func MissingOf(t Type) CompiledValue {
	return CompiledValue{typ: t, absent: true}
}

// Value returns the carried value. Returns false if the cell is absent
func (c CompiledValue) Value() (LhsValue, bool) {
	if c.absent {
		return LhsValue{}, false
	}
	return c.value, true
}

// MissingType returns the type of an absent cell. Returns false if the cell
// carries a value
func (c CompiledValue) MissingType() (Type, bool) {
	if c.absent {
		return c.typ, true
	}
	return NullType(), false
}

// GetType returns the cell type, for both carried values and absences
func (c CompiledValue) GetType() Type { return c.typ }

func (c CompiledValue) String() string {
	if c.absent {
		return "missing " + c.typ.String()
	}
	return c.value.String()
}
