package note

import (
	"github.com/Shreyash123-code/AICTE-project1/internal/svc"
)

type NoteHandler struct {
	svc *svc.ServiceContext
}

func NewNoteHandler(svc *svc.ServiceContext) *NoteHandler {
	return &NoteHandler{svc: svc}
}
