package dto

// EmployeeDTO representa o formulário de funcionário na API.
// CreatedAt é atribuído pelo servidor e ignorado na criação.
type EmployeeDTO struct {
	CreatedAt              string `json:"created_at,omitempty"`
	FullName               string `json:"full_name"`
	CPF                    string `json:"cpf"`
	Address                string `json:"address"`
	Email                  string `json:"email"`
	Phone                  string `json:"phone"`
	Age                    int    `json:"age"`
	BirthDate              string `json:"birth_date"`
	Directorate            string `json:"directorate"`
	HasComorbidity         string `json:"has_comorbidity"`
	ComorbidityDescription string `json:"comorbidity_description"`
	BloodType              string `json:"blood_type"`
	HasHealthPlan          string `json:"has_health_plan"`
	HealthPlanName         string `json:"health_plan_name"`
	MaritalStatus          string `json:"marital_status"`
	SpouseName             string `json:"spouse_name"`
	SpouseAge              int    `json:"spouse_age"`
	HasChildren            string `json:"has_children"`
	ChildrenCount          int    `json:"children_count"`
	Emergency1Name         string `json:"emergency1_name"`
	Emergency1Phone        string `json:"emergency1_phone"`
	Emergency1Relationship string `json:"emergency1_relationship"`
	Emergency2Name         string `json:"emergency2_name"`
	Emergency2Phone        string `json:"emergency2_phone"`
	Emergency2Relationship string `json:"emergency2_relationship"`
}

// EmployeeKey é a chave natural (nome completo, CPF) de um registro.
type EmployeeKey struct {
	FullName string `json:"full_name" query:"full_name"`
	CPF      string `json:"cpf" query:"cpf"`
}

// UpdateEmployeeRequest substitui o registro localizado por Original.
type UpdateEmployeeRequest struct {
	Original EmployeeKey `json:"original"`
	Employee EmployeeDTO `json:"employee"`
}

// DeleteEmployeeRequest exige Confirm=true para excluir.
type DeleteEmployeeRequest struct {
	FullName string `json:"full_name"`
	CPF      string `json:"cpf"`
	Confirm  bool   `json:"confirm"`
}

// EmployeeQuery filtros, ordenação e página da consulta administrativa.
type EmployeeQuery struct {
	Q           string `query:"q"`
	Directorate string `query:"directorate"`
	SortBy      string `query:"sort_by"`
	Order       string `query:"order"` // asc | desc
	PageRequest
}

// EmployeeListResponse página da consulta.
type EmployeeListResponse struct {
	Items []EmployeeDTO `json:"items"`
	Page  PageResponse  `json:"page"`
}

// MutationResponse resultado de edição ou exclusão, com a linha física afetada.
type MutationResponse struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// FormOptionsResponse opções fechadas do formulário e colunas da planilha.
type FormOptionsResponse struct {
	Directorates    []string `json:"directorates"`
	BloodTypes      []string `json:"blood_types"`
	MaritalStatuses []string `json:"marital_statuses"`
	Answers         []string `json:"answers"`
	Columns         []Column `json:"columns"`
}

// Column chave interna e cabeçalho de exibição.
type Column struct {
	Key    string `json:"key"`
	Header string `json:"header"`
}
