package modulo

import "math/big"

// Operand is anything accepted on the right-hand side of a binary
// operation: an Element, or a raw integer (int, int64, uint, uint64 or
// *big.Int) that is coerced to an element of the receiver's modulus.
type Operand interface{}

// coerce normalizes a right-hand operand against the receiver. An Element
// passes through only when the moduli agree; raw integers are wrapped into
// fresh elements of the receiver's modulus.
func (e Element) coerce(x Operand) (Element, error) {
	switch v := x.(type) {
	case Element:
		if e.modulus.Cmp(v.modulus) != 0 {
			return Element{}, ErrModulusMismatch
		}
		return v, nil
	case Ring:
		return Element{}, ErrExpectedElement
	case *big.Int:
		if v == nil {
			return Element{}, ErrExpectedOperand
		}
		return NewElement(v, e.modulus)
	case int:
		return NewElement(big.NewInt(int64(v)), e.modulus)
	case int64:
		return NewElement(big.NewInt(v), e.modulus)
	case uint:
		return NewElement(new(big.Int).SetUint64(uint64(v)), e.modulus)
	case uint64:
		return NewElement(new(big.Int).SetUint64(v), e.modulus)
	default:
		return Element{}, ErrExpectedOperand
	}
}

// exponentValue resolves an exponent operand to a plain integer. Unlike
// coerce, an Element exponent may carry any modulus; only its residue is
// used.
func exponentValue(x Operand) (*big.Int, error) {
	switch v := x.(type) {
	case Element:
		return v.residue, nil
	case *big.Int:
		if v == nil {
			return nil, ErrInvalidExponent
		}
		return v, nil
	case int:
		return big.NewInt(int64(v)), nil
	case int64:
		return big.NewInt(v), nil
	case uint:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint64:
		return new(big.Int).SetUint64(v), nil
	default:
		return nil, ErrInvalidExponent
	}
}
