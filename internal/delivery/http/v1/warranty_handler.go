package v1

import (
	"io"
	"net/http"

	"go-detailing-backend/internal/delivery/http/response"
	"go-detailing-backend/internal/domain"
	"go-detailing-backend/pkg/apperror"
	"go-detailing-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

// invoiceFieldName is the multipart field carrying the optional invoice file.
const invoiceFieldName = "invoice"

type WarrantyHandler struct {
	warrantyUC domain.WarrantyUsecase
}

// NewWarrantyHandler registers the warranty registration route
func NewWarrantyHandler(public *gin.RouterGroup, warrantyUC domain.WarrantyUsecase) {
	handler := &WarrantyHandler{
		warrantyUC: warrantyUC,
	}

	public.POST("/warranty", handler.RegisterWarranty)
}

// RegisterWarranty godoc
// @Summary      Register Warranty
// @Description  Register a service warranty. Accepts multipart form data with an optional invoice file (jpg, png or pdf, max 5MB).
// @Tags         forms
// @Accept       multipart/form-data
// @Produce      json
// @Param        name            formData  string  true   "Customer name"
// @Param        phone           formData  string  true   "Phone number"
// @Param        email           formData  string  true   "Email address"
// @Param        city            formData  string  true   "City"
// @Param        state           formData  string  true   "State"
// @Param        service         formData  string  true   "Service availed"
// @Param        registrationNo  formData  string  true   "Vehicle registration number"
// @Param        vehicleBrand    formData  string  true   "Vehicle brand"
// @Param        vehicleModel    formData  string  true   "Vehicle model"
// @Param        invoice         formData  file    false  "Invoice document"
// @Success      200  {object}  response.SuccessResponse
// @Failure      400  {object}  response.ErrorResponse
// @Failure      500  {object}  response.ErrorResponse
// @Router       /warranty [post]
func (h *WarrantyHandler) RegisterWarranty(c *gin.Context) {
	// Cap the whole request body before touching the multipart payload so an
	// oversized upload is rejected without buffering it.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, security.MaxInvoiceSize+1<<20)

	if err := c.Request.ParseMultipartForm(security.MaxInvoiceSize); err != nil {
		c.Error(apperror.BadRequest("Invoice file must be 5MB or smaller"))
		return
	}

	var form domain.WarrantyForm
	if err := c.ShouldBind(&form); err != nil {
		c.Error(apperror.BadRequest("Invalid form data"))
		return
	}

	invoice, appErr := h.extractInvoice(c)
	if appErr != nil {
		c.Error(appErr)
		return
	}

	if err := h.warrantyUC.RegisterWarranty(c.Request.Context(), &form, invoice); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Warranty registered successfully!")
}

// extractInvoice buffers and validates the optional invoice upload. A rejected
// file short-circuits the request; it never reaches the formatter.
func (h *WarrantyHandler) extractInvoice(c *gin.Context) (*domain.InvoiceAttachment, *apperror.AppError) {
	fileHeader, err := c.FormFile(invoiceFieldName)
	if err != nil {
		// No file attached; the invoice is optional
		return nil, nil
	}

	if fileHeader.Size > security.MaxInvoiceSize {
		return nil, apperror.BadRequest("Invoice file must be 5MB or smaller")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, apperror.BadRequest("Failed to read uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, apperror.BadRequest("Failed to read uploaded file")
	}

	result := security.ValidateInvoice(fileHeader.Filename, data)
	if !result.Valid {
		return nil, apperror.BadRequest("Only JPG, PNG and PDF files are allowed")
	}

	return &domain.InvoiceAttachment{
		Filename:    fileHeader.Filename,
		Content:     data,
		ContentType: result.DetectedMIME,
	}, nil
}
