// file: internals/features/newsfeed/moderation/dto/moderation_dto.go
package dto

import "strings"

/* ==============================
   DECIDE (POST /violations/:id/decide)
============================== */

type DecideViolationRequest struct {
	Outcome string `json:"outcome" validate:"required,oneof=approve reject"`
}

func (r *DecideViolationRequest) Approve() bool {
	return strings.EqualFold(strings.TrimSpace(r.Outcome), "approve")
}
