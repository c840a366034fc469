package handler

import "github.com/gorilla/mux"

// Routes builds the router: public registration and login, then the
// bearer-protected surface behind the auth middleware.
func Routes(h *Handler, auth mux.MiddlewareFunc) *mux.Router {
	r := mux.NewRouter()
	// Public routes
	r.HandleFunc("/", h.Root).Methods("GET")
	r.HandleFunc("/users/register", h.Register).Methods("POST")
	r.HandleFunc("/auth/token", h.Login).Methods("POST")
	// Protected routes
	authRouter := r.PathPrefix("/").Subrouter()
	authRouter.Use(auth)
	authRouter.HandleFunc("/auth/refresh_access_token", h.Refresh).Methods("POST")
	authRouter.HandleFunc("/users/list-all-users", h.ListUsers).Methods("GET")
	authRouter.HandleFunc("/users/user/{id}", h.GetUser).Methods("GET")
	authRouter.HandleFunc("/users/user-to-edit/{id}", h.EditUser).Methods("PUT")
	authRouter.HandleFunc("/users/delete_user/{id}", h.DeleteUser).Methods("DELETE")
	authRouter.HandleFunc("/users/books-read/{book_id}", h.MarkBookRead).Methods("POST")
	authRouter.HandleFunc("/novelists/create-novelist", h.CreateNovelist).Methods("POST")
	authRouter.HandleFunc("/novelists/list-novelists", h.ListNovelists).Methods("GET")
	authRouter.HandleFunc("/novelists/list-novelists/{name}", h.SearchNovelists).Methods("GET")
	authRouter.HandleFunc("/novelists/novelist/{id}", h.GetNovelist).Methods("GET")
	authRouter.HandleFunc("/novelists/edit-novelist/{id}", h.EditNovelist).Methods("PUT")
	authRouter.HandleFunc("/novelists/delete-novelist/{id}", h.DeleteNovelist).Methods("DELETE")
	authRouter.HandleFunc("/books/create-book", h.CreateBook).Methods("POST")
	authRouter.HandleFunc("/books/list-all-books", h.ListBooks).Methods("GET")
	authRouter.HandleFunc("/books/export-catalog", h.ExportCatalog).Methods("GET")
	authRouter.HandleFunc("/books/get-book/{book_id}", h.GetBook).Methods("GET")
	authRouter.HandleFunc("/books/list-book/{title}/{year}", h.SearchBooks).Methods("GET")
	authRouter.HandleFunc("/books/update-book/{book_id}", h.UpdateBook).Methods("PATCH")
	authRouter.HandleFunc("/books/delete-book/{book_id}", h.DeleteBook).Methods("DELETE")
	return r
}
