package domain

import "time"

type EmployeeRole string

const (
	EmployeeRolePiloto     EmployeeRole = "piloto"
	EmployeeRoleComissario EmployeeRole = "comissario"
	EmployeeRoleTecnico    EmployeeRole = "tecnico"
	EmployeeRoleAtendente  EmployeeRole = "atendente"
)

type Employee struct {
	ID           int64        `json:"id"`
	Nome         string       `json:"nome"`
	Matricula    string       `json:"matricula"`
	Funcao       EmployeeRole `json:"funcao"`
	ContratadoEm time.Time    `json:"contratadoEm"`
}
