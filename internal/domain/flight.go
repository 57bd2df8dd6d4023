package domain

import "time"

type FlightStatus string

const (
	FlightStatusProgramado  FlightStatus = "programado"
	FlightStatusEmAndamento FlightStatus = "em_andamento"
	FlightStatusConcluido   FlightStatus = "concluido"
	FlightStatusCancelado   FlightStatus = "cancelado"
)

type Flight struct {
	ID              int64        `json:"id"`
	OrigemID        int64        `json:"origemId"`
	DestinoID       int64        `json:"destinoId"`
	DataHoraPartida time.Time    `json:"dataHoraPartida"`
	DataHoraChegada time.Time    `json:"dataHoraChegada"`
	Status          FlightStatus `json:"status"`
	RegistradoEm    time.Time    `json:"registradoEm"`
	PlaneID         int64        `json:"planeId"`

	// Relations, loaded on every read.
	Origem  *Airport `json:"origem,omitempty"`
	Destino *Airport `json:"destino,omitempty"`
	Plane   *Plane   `json:"plane,omitempty"`
}
