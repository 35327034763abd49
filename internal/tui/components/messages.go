package components

import "github.com/Veraticus/portops/internal/model"

// InputChangedMsg reports new form values after any control changes.
type InputChangedMsg struct {
	Input model.InputParameters
}
