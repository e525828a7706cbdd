// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pend

import "reflect"

// Tag identifies a type at runtime. Tags are comparable values: two tags are
// equal exactly when they identify the same type, so a Tag works as a map key
// and as the dispatch key of a [Suspension].
//
// A tag is either plain, identifying a single type T, or parameterized,
// identifying an effect family F instantiated at a parameter type P.
// Parameterized tags of the same family are covariant in the parameter,
// which is what lets a handler for Fail[error] also discharge Fail[*os.PathError].
type Tag struct {
	base reflect.Type
	arg  reflect.Type
}

// TagOf returns the plain tag of T. T may be a concrete type or an interface;
// interface tags are supertypes of the tags of their implementations.
func TagOf[T any]() Tag {
	return Tag{base: reflect.TypeOf((*T)(nil)).Elem()}
}

// ParamTag returns the tag of effect family F instantiated at parameter P.
func ParamTag[F, P any]() Tag {
	return Tag{
		base: reflect.TypeOf((*F)(nil)).Elem(),
		arg:  reflect.TypeOf((*P)(nil)).Elem(),
	}
}

// Never is the uninhabited parameter type: no value implements it. Within one
// effect family the tag at Never is a subtype of the tag at every other
// parameter, so an operation raised at Never is picked up by whichever
// handler of that family runs first.
type Never interface {
	never()
}

var neverType = reflect.TypeOf((*Never)(nil)).Elem()

// Equal reports whether t and u identify the same type.
// Tags are comparable, so t == u means the same thing.
func (t Tag) Equal(u Tag) bool { return t == u }

// SubtypeOf reports whether t is a subtype of u: every suspension tagged t
// may be discharged by a handler installed for u.
//
// Plain tags follow Go assignability, so a concrete tag is a subtype of the
// tags of the interfaces it implements. Parameterized tags require the same
// family and are covariant in the parameter, with [Never] below everything.
// Reflexivity holds for all tags; plain and parameterized tags are unrelated.
func (t Tag) SubtypeOf(u Tag) bool {
	if t == u {
		return true
	}
	if t.arg != nil || u.arg != nil {
		if t.base != u.base || t.arg == nil || u.arg == nil {
			return false
		}
		if t.arg == neverType {
			return true
		}
		return subtype(t.arg, u.arg)
	}
	return subtype(t.base, u.base)
}

// Param returns t's parameter as a plain tag. ok is false for plain tags.
func (t Tag) Param() (Tag, bool) {
	if t.arg == nil {
		return Tag{}, false
	}
	return Tag{base: t.arg}, true
}

// String returns a readable form such as "pend.AbortEffect[string]" or "int".
func (t Tag) String() string {
	if t.base == nil {
		return "<zero tag>"
	}
	if t.arg != nil {
		return t.base.String() + "[" + t.arg.String() + "]"
	}
	return t.base.String()
}

func subtype(a, b reflect.Type) bool {
	if a == b {
		return true
	}
	if b.Kind() == reflect.Interface {
		return a.Implements(b)
	}
	return a.AssignableTo(b)
}

// assignAs recovers a value matched by declared subtyping as a T. The fast
// path is a plain assertion; dynamic types that are assignable to T without
// being identical to it go through reflection.
func assignAs[T any](v Erased) T {
	if t, ok := v.(T); ok {
		return t
	}
	var t T
	if v == nil {
		return t
	}
	reflect.ValueOf(&t).Elem().Set(reflect.ValueOf(v))
	return t
}

// sameFamily reports whether two parameterized tags belong to one effect family.
func sameFamily(t, u Tag) bool {
	return t.arg != nil && u.arg != nil && t.base == u.base
}
