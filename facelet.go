package cubelab

// Facelet string handling. Solvers in the Kociemba tradition take the cube
// as 54 face letters in the fixed order U, R, F, D, L, B, each face
// row-major, with every sticker written as the letter of the face its
// color belongs to on a solved cube.

// faceletOrder is the face order of the solver string.
var faceletOrder = [6]Face{FaceU, FaceR, FaceF, FaceD, FaceL, FaceB}

// EncodeFacelets converts a cube to the 54-character solver string.
// The cube must pass Validate first; the validation error is returned
// as-is so callers surface one diagnostic.
func EncodeFacelets(c *Cube) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}

	buf := make([]byte, 0, 54)
	for _, f := range faceletOrder {
		for r := 0; r < 3; r++ {
			for col := 0; col < 3; col++ {
				color := c.Stickers[f][r][col]
				letter := color.Letter()
				if letter == '.' {
					return "", &EncodeError{Color: color}
				}
				buf = append(buf, letter)
			}
		}
	}
	return string(buf), nil
}

// DecodeFacelets is the structural inverse of EncodeFacelets. It rebuilds a
// cube from a 54-character solver string, mapping each face letter back to
// its canonical color.
func DecodeFacelets(s string) (*Cube, error) {
	if len(s) != 54 {
		return nil, &IncompleteError{Count: len(s)}
	}

	c := NewCube()
	i := 0
	for _, f := range faceletOrder {
		for r := 0; r < 3; r++ {
			for col := 0; col < 3; col++ {
				color, ok := letterColor(s[i])
				if !ok {
					return nil, &ParseError{Token: string(s[i])}
				}
				c.Stickers[f][r][col] = color
				i++
			}
		}
	}
	return c, nil
}

func letterColor(b byte) (Color, bool) {
	switch b {
	case 'U':
		return White, true
	case 'D':
		return Yellow, true
	case 'F':
		return Blue, true
	case 'B':
		return Green, true
	case 'L':
		return Orange, true
	case 'R':
		return Red, true
	default:
		return Unset, false
	}
}
