package list_turnos

import (
	"strconv"
	"time"

	"github.com/lab-agenda/turnero-service/internal/domain"
	"github.com/lab-agenda/turnero-service/internal/service/turnos/models"
)

// ToServiceRequest собирает запрос к сервису из query параметров
func ToServiceRequest(agendaIDStr, desdeStr, hastaStr, documentoStr string) (*models.ListTurnosRequest, error) {
	req := &models.ListTurnosRequest{}

	if agendaIDStr != "" {
		agendaID, err := strconv.ParseInt(agendaIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.AgendaID = &agendaID
	}

	if desdeStr != "" {
		desde, err := time.Parse(domain.DateFormat, desdeStr)
		if err != nil {
			return nil, err
		}
		req.FechaFrom = &desde
	}

	if hastaStr != "" {
		hasta, err := time.Parse(domain.DateFormat, hastaStr)
		if err != nil {
			return nil, err
		}
		req.FechaTo = &hasta
	}

	if documentoStr != "" {
		req.Documento = &documentoStr
	}

	return req, nil
}
