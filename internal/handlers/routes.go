package handlers

import "github.com/go-chi/chi/v5"

// API groups the handlers mounted under /api/v1
type API struct {
	Users        *UserHandler
	Avatars      *AvatarHandler
	Likes        *LikeHandler
	Matches      *MatchHandler
	Availability *AvailabilityHandler
}

// Mount registers every API route on r
func (a *API) Mount(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Post("/", a.Users.CreateUser)
		r.Get("/", a.Users.ListUsers)
		r.Get("/by-email", a.Users.GetUserByEmail)
		r.Get("/{id}", a.Users.GetUser)
		r.Post("/{id}/avatar", a.Avatars.UploadAvatar)
		r.Post("/{id}/avatar/confirm", a.Avatars.ConfirmAvatar)
	})

	r.Route("/likes", func(r chi.Router) {
		r.Post("/", a.Likes.CreateLike)
		r.Get("/given/{userId}", a.Likes.LikesGiven)
		r.Get("/received/{userId}", a.Likes.LikesReceived)
		r.Get("/check", a.Likes.CheckLike)
	})

	r.Route("/matches", func(r chi.Router) {
		r.Get("/user/{userId}", a.Matches.ListForUser)
		r.Get("/{id}", a.Matches.GetMatch)
	})

	r.Route("/availability", func(r chi.Router) {
		r.Post("/", a.Availability.SubmitAvailability)
		r.Get("/user", a.Availability.GetAvailability)
		r.Get("/all", a.Availability.GetAllAvailability)
		r.Get("/common-slot/{matchId}", a.Availability.FindCommonSlot)
		r.Get("/status/{matchId}", a.Availability.GetStatus)
	})
}
