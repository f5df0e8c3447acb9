package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cadastro-funcionarios/internal/application/dto"
	"github.com/jhoicas/cadastro-funcionarios/internal/application/employee"
)

// EmployeeHandler cadastro público e área administrativa de funcionários.
type EmployeeHandler struct {
	register *employee.RegisterUseCase
	manage   *employee.ManageUseCase
	query    *employee.QueryUseCase
}

// NewEmployeeHandler constrói o handler.
func NewEmployeeHandler(register *employee.RegisterUseCase, manage *employee.ManageUseCase, query *employee.QueryUseCase) *EmployeeHandler {
	return &EmployeeHandler{register: register, manage: manage, query: query}
}

// Register godoc
// @Summary      Cadastrar funcionário
// @Description  Valida o formulário completo e acrescenta uma linha na planilha.
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EmployeeDTO  true  "Formulário de cadastro"
// @Success      201   {object}  dto.EmployeeDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) Register(c *fiber.Ctx) error {
	var in dto.EmployeeDTO
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.register.Register(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Consultar cadastros
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Param        q            query  string  false  "Busca por nome, e-mail ou CPF (sem acento)"
// @Param        directorate  query  string  false  "Diretoria"
// @Param        sort_by      query  string  false  "Chave da coluna"
// @Param        order        query  string  false  "asc ou desc"
// @Param        limit        query  int     false  "Limite"  default(50)
// @Param        offset       query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.EmployeeListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	var q dto.EmployeeQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros inválidos"})
	}
	out, err := h.query.List(c.UserContext(), GetSession(c), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ExportCSV godoc
// @Summary      Exportar cadastros em CSV
// @Description  CSV UTF-8 com BOM e cabeçalhos de exibição; aceita os mesmos filtros da consulta.
// @Tags         employees
// @Security     Bearer
// @Produce      text/csv
// @Param        q            query  string  false  "Busca"
// @Param        directorate  query  string  false  "Diretoria"
// @Param        sort_by      query  string  false  "Chave da coluna"
// @Param        order        query  string  false  "asc ou desc"
// @Success      200  {file}  file
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/employees/export.csv [get]
func (h *EmployeeHandler) ExportCSV(c *fiber.Ctx) error {
	var q dto.EmployeeQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros inválidos"})
	}
	data, filename, err := h.query.ExportCSV(c.UserContext(), GetSession(c), q)
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return c.Send(data)
}

// SheetPDF godoc
// @Summary      Ficha cadastral em PDF
// @Tags         employees
// @Security     Bearer
// @Produce      application/pdf
// @Param        full_name  query  string  true  "Nome completo"
// @Param        cpf        query  string  true  "CPF"
// @Success      200  {file}  file
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/sheet.pdf [get]
func (h *EmployeeHandler) SheetPDF(c *fiber.Ctx) error {
	var key dto.EmployeeKey
	if err := c.QueryParser(&key); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros inválidos"})
	}
	data, filename, err := h.query.EmployeeSheetPDF(c.UserContext(), GetSession(c), key)
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(data)
}

// Update godoc
// @Summary      Editar cadastro
// @Description  Localiza pela chave original (nome, CPF) e sobrescreve a linha inteira.
// @Tags         employees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateEmployeeRequest  true  "Chave original e novos valores"
// @Success      200  {object}  dto.MutationResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/employees [put]
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.manage.Update(c.UserContext(), GetSession(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir cadastro
// @Description  Exige confirm=true; remove a primeira linha com a chave informada.
// @Tags         employees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DeleteEmployeeRequest  true  "Chave e confirmação"
// @Success      200  {object}  dto.MutationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees [delete]
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	var in dto.DeleteEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.manage.Delete(c.UserContext(), GetSession(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Options godoc
// @Summary      Opções do formulário
// @Tags         employees
// @Produce      json
// @Success      200  {object}  dto.FormOptionsResponse
// @Router       /api/options [get]
func (h *EmployeeHandler) Options(c *fiber.Ctx) error {
	return c.JSON(employee.FormOptions())
}
