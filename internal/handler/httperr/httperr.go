package httperr

import (
	"github.com/gin-gonic/gin"
)

const (
	MsgInternal        = "Error interno del servidor"
	MsgInvalidRequest  = "Solicitud inválida"
	MsgConnection      = "Error de conexión"
	MsgTooManyRequests = "Demasiadas solicitudes. Intenta nuevamente en unos minutos."
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Title   string `json:"title,omitempty"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, msg string) Response {
	resp := Response{Status: status}
	resp.Error.Message = msg
	return resp
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	AbortWithTitledError(c, status, err, "", msg, detail)
}

// AbortWithTitledError is AbortWithError for notices that carry a heading.
func AbortWithTitledError(c *gin.Context, status int, err error, title, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, msg)
	resp.Error.Title = title
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
