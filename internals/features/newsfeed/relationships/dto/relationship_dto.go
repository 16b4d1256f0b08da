// file: internals/features/newsfeed/relationships/dto/relationship_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"
)

/* ==============================
   DISCREET MODE (PUT /profile/discreet-mode)
============================== */

type SetDiscreetModeRequest struct {
	Enabled      bool       `json:"enabled"`
	EmployerID   *uuid.UUID `json:"employer_id" validate:"required_if=Enabled true"`
	EmployerName *string    `json:"employer_name" validate:"omitempty,max=120"`
}

func (r *SetDiscreetModeRequest) Name() *string {
	if r.EmployerName == nil {
		return nil
	}
	t := strings.TrimSpace(*r.EmployerName)
	if t == "" {
		return nil
	}
	return &t
}
