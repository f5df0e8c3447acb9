package broker_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/cadastro-funcionarios/internal/application/employee"
	"github.com/jhoicas/cadastro-funcionarios/internal/infrastructure/broker"
)

func TestMessage_CorpoECabecalhos(t *testing.T) {
	at := time.Date(2026, 10, 19, 13, 45, 7, 0, time.UTC)
	cases := []struct {
		action string
		body   string
	}{
		{employee.ActionCreated, "Cadastro de FUNCIONÁRIO Maria Silva"},
		{employee.ActionUpdated, "Edição de FUNCIONÁRIO Maria Silva"},
		{employee.ActionDeleted, "Exclusão de FUNCIONÁRIO Maria Silva"},
	}
	for _, tc := range cases {
		body, headers := broker.Message(employee.Event{
			Action: tc.action, FullName: "Maria Silva", CPF: "529.982.247-25", Row: 3, OccurredAt: at,
		})
		assert.Equal(t, tc.body, body)
		assert.Equal(t, tc.action, headers["action"])
		assert.Equal(t, "529.982.247-25", headers["cpf"])
		assert.Equal(t, "Maria Silva", headers["nome"])
		assert.Equal(t, int32(3), headers["row"])
		assert.Equal(t, "2026-10-19T13:45:07Z", headers["timestamp"])
	}
}
