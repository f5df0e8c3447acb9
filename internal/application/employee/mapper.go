package employee

import (
	"github.com/jhoicas/cadastro-funcionarios/internal/application/dto"
	"github.com/jhoicas/cadastro-funcionarios/internal/domain/entity"
)

func toEntity(in dto.EmployeeDTO) *entity.Employee {
	return &entity.Employee{
		CreatedAt:              in.CreatedAt,
		FullName:               in.FullName,
		CPF:                    in.CPF,
		Address:                in.Address,
		Email:                  in.Email,
		Phone:                  in.Phone,
		Age:                    in.Age,
		BirthDate:              in.BirthDate,
		Directorate:            in.Directorate,
		HasComorbidity:         in.HasComorbidity,
		ComorbidityDescription: in.ComorbidityDescription,
		BloodType:              in.BloodType,
		HasHealthPlan:          in.HasHealthPlan,
		HealthPlanName:         in.HealthPlanName,
		MaritalStatus:          in.MaritalStatus,
		SpouseName:             in.SpouseName,
		SpouseAge:              in.SpouseAge,
		HasChildren:            in.HasChildren,
		ChildrenCount:          in.ChildrenCount,
		Emergency1Name:         in.Emergency1Name,
		Emergency1Phone:        in.Emergency1Phone,
		Emergency1Relationship: in.Emergency1Relationship,
		Emergency2Name:         in.Emergency2Name,
		Emergency2Phone:        in.Emergency2Phone,
		Emergency2Relationship: in.Emergency2Relationship,
	}
}

func toDTO(e *entity.Employee) dto.EmployeeDTO {
	return dto.EmployeeDTO{
		CreatedAt:              e.CreatedAt,
		FullName:               e.FullName,
		CPF:                    e.CPF,
		Address:                e.Address,
		Email:                  e.Email,
		Phone:                  e.Phone,
		Age:                    e.Age,
		BirthDate:              e.BirthDate,
		Directorate:            e.Directorate,
		HasComorbidity:         e.HasComorbidity,
		ComorbidityDescription: e.ComorbidityDescription,
		BloodType:              e.BloodType,
		HasHealthPlan:          e.HasHealthPlan,
		HealthPlanName:         e.HealthPlanName,
		MaritalStatus:          e.MaritalStatus,
		SpouseName:             e.SpouseName,
		SpouseAge:              e.SpouseAge,
		HasChildren:            e.HasChildren,
		ChildrenCount:          e.ChildrenCount,
		Emergency1Name:         e.Emergency1Name,
		Emergency1Phone:        e.Emergency1Phone,
		Emergency1Relationship: e.Emergency1Relationship,
		Emergency2Name:         e.Emergency2Name,
		Emergency2Phone:        e.Emergency2Phone,
		Emergency2Relationship: e.Emergency2Relationship,
	}
}
