package dto

type EmployeeOption struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
