package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookstore-integration/internal/application/book"
	"github.com/xiebiao/bookstore-integration/pkg/response"
)

// BookHandler serves the inventory endpoints.
type BookHandler struct {
	listBooksUseCase *appbook.ListBooksUseCase
	getBookUseCase   *appbook.GetBookUseCase
}

// NewBookHandler creates the inventory handler.
func NewBookHandler(listBooksUseCase *appbook.ListBooksUseCase, getBookUseCase *appbook.GetBookUseCase) *BookHandler {
	return &BookHandler{
		listBooksUseCase: listBooksUseCase,
		getBookUseCase:   getBookUseCase,
	}
}

// ListBooks returns the full catalog.
// @Summary      List all books
// @Description  Returns every book currently held in inventory
// @Tags         Inventory
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200 {array} book.Book
// @Failure      401 {object} response.ErrorBody
// @Router       /api/books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	books, err := h.listBooksUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, books)
}

// GetBook returns one book by id.
// @Summary      Get a book by ID
// @Tags         Inventory
// @Produce      json
// @Security     ApiKeyAuth
// @Param        book_id path string true "Book ID"
// @Success      200 {object} book.Book
// @Failure      404 {object} response.ErrorBody
// @Failure      401 {object} response.ErrorBody
// @Router       /api/books/{book_id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	b, err := h.getBookUseCase.Execute(c.Request.Context(), c.Param("book_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, b)
}
