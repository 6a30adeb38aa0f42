package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

type Validater interface {
	Validate() map[string]string
}

func Validate(v Validater) map[string]string {
	return v.Validate()
}

type InitializeChatParams struct {
	DocumentID string `json:"documentId" validate:"required"`
}

type ChatParams struct {
	DocumentID *string `json:"documentId"`
	Message    string  `json:"message" validate:"required"`
	UserID     string  `json:"userId" validate:"required"`
}

type SummarizePDFParams struct {
	DocumentID string `json:"documentId" validate:"required"`
	FileURL    string `json:"fileUrl"`
	FileKey    string `json:"fileKey" validate:"required"`
}

type TranscribeParams struct {
	DocumentID string `json:"documentId" validate:"required"`
	FileURL    string `json:"fileUrl"`
	FileKey    string `json:"fileKey" validate:"required"`
	MimeType   string `json:"mimeType"`
}

type GenerateReportParams struct {
	Topic string `json:"topic" validate:"required"`
}

func (params *InitializeChatParams) Validate() map[string]string {
	return validateStruct(params)
}

func (params *ChatParams) Validate() map[string]string {
	return validateStruct(params)
}

func (params *SummarizePDFParams) Validate() map[string]string {
	return validateStruct(params)
}

func (params *TranscribeParams) Validate() map[string]string {
	return validateStruct(params)
}

func (params *GenerateReportParams) Validate() map[string]string {
	return validateStruct(params)
}

func validateStruct(v any) map[string]string {
	validate := validator.New()
	if err := validate.Struct(v); err != nil {
		errs := err.(validator.ValidationErrors)
		errors := make(map[string]string)
		for _, e := range errs {
			errors[e.Field()] = fmt.Sprintf("failed on '%s' tag", e.Tag())
		}
		return errors
	}
	return nil
}
