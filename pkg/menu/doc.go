// Package menu implements the menu (cardápio) domain: the Item model and its
// validation rules, the Store contract every backend satisfies, the Service
// that answers queries and performs mutations, and the HTTP handlers that
// expose it under /api/menu.
//
// # Operations
//
//   - Create: validate and insert, stamping criadoEm/atualizadoEm
//   - FindAll, FindOne
//   - FindByCategory, SearchByName: case-insensitive substring match
//   - FindAllCategories: distinct categories, sorted
//   - Update: partial update validated before the store is touched
//   - Remove: delete and return the last state
//
// # Errors
//
// Service errors are *errors.StructuredError with one of three codes:
// INVALID_REQUEST (with a "fields" list of FieldError), NOT_FOUND and
// STORAGE_ERROR. Stores report absence with ErrNotFound; any other store
// error becomes STORAGE_ERROR.
//
// # HTTP
//
//	GET    /api/menu
//	GET    /api/menu/categorias/lista
//	GET    /api/menu/categoria/{categoria}
//	GET    /api/menu/busca/{nome}
//	GET    /api/menu/{id}
//	POST   /api/menu
//	PUT    /api/menu/{id}
//	DELETE /api/menu/{id}
//
// Successful responses use {"success": true, "data": ...}; failures use the
// server.ErrorResponse envelope.
package menu
