package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /register", handler.Register)
	mux.HandleFunc("POST /login", handler.Login)
	mux.HandleFunc("GET /islogin", handler.IsLoggedIn)

	mux.HandleFunc("GET /requests", handler.ListRequests)
	mux.HandleFunc("GET /request/{requestID}", handler.GetRequest)
	mux.HandleFunc("GET /request/{requestID}/participants", handler.ListParticipants)

	mux.HandleFunc("GET /user/{userID}", handler.GetUserProfile)
	mux.HandleFunc("GET /user/{userID}/ratings", handler.ListUserRatings)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /request/joined", RequireAuth(verifier, http.HandlerFunc(handler.ListJoinedRequests)))
	mux.Handle("POST /request", RequireAuth(verifier, http.HandlerFunc(handler.CreateRequest)))
	mux.Handle("DELETE /request/{requestID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteRequest)))

	mux.Handle("POST /request/{requestID}/accept", RequireAuth(verifier, http.HandlerFunc(handler.JoinRequest)))
	mux.Handle("POST /request/{requestID}/confirm", RequireAuth(verifier, http.HandlerFunc(handler.ConfirmParticipant)))
	mux.Handle("DELETE /participants/{participantID}", RequireAuth(verifier, http.HandlerFunc(handler.RejectParticipant)))

	mux.Handle("POST /ratings", RequireAuth(verifier, http.HandlerFunc(handler.SubmitRating)))
	mux.Handle("POST /profile/update", RequireAuth(verifier, http.HandlerFunc(handler.UpdateProfile)))
}
