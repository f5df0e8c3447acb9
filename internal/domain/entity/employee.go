package entity

// Respostas das perguntas Sim/Não do formulário.
const (
	AnswerYes = "Sim"
	AnswerNo  = "Não"
)

// Employee representa uma linha da planilha de cadastro de funcionários.
// Não existe identificador próprio: a identidade é o par (FullName, CPF).
type Employee struct {
	CreatedAt              string // dd/mm/aaaa HH:MM:SS, horário de São Paulo
	FullName               string
	CPF                    string // XXX.XXX.XXX-XX
	Address                string
	Email                  string
	Phone                  string
	Age                    int
	BirthDate              string // dd/mm/aaaa
	Directorate            string
	HasComorbidity         string
	ComorbidityDescription string
	BloodType              string
	HasHealthPlan          string
	HealthPlanName         string
	MaritalStatus          string
	SpouseName             string
	SpouseAge              int
	HasChildren            string
	ChildrenCount          int
	Emergency1Name         string
	Emergency1Phone        string
	Emergency1Relationship string
	Emergency2Name         string
	Emergency2Phone        string
	Emergency2Relationship string
}
