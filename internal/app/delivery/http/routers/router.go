package routers

import (
	"time"

	"doctorsportal-service/internal/app/config"
	"doctorsportal-service/internal/app/delivery/http/controllers"
	"doctorsportal-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

type Controllers struct {
	Health            *controllers.HealthController
	AppointmentOption *controllers.AppointmentOptionController
	Booking           *controllers.BookingController
	Auth              *controllers.AuthController
	User              *controllers.UserController
	Doctor            *controllers.DoctorController
	Payment           *controllers.PaymentController
}

func SetupRoutes(
	router *chi.Mux,
	c *Controllers,
	m *middlewares.Middlewares,
	internalConfig *config.InternalConfig,
) {
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, 1*time.Minute))
	router.Use(m.RequestID)
	router.Use(m.Logging)
	router.Use(m.Recover)

	// Public routes
	router.Get("/", c.Health.Liveness)
	router.Get("/appointmentOptions", c.AppointmentOption.GetAppointmentOptions)
	router.Get("/doctorSpecialties", c.AppointmentOption.GetDoctorSpecialties)
	router.Get("/jwt", c.Auth.GetToken)
	router.Post("/users", c.User.SaveUser)

	// Routes behind a valid token
	router.Group(func(r chi.Router) {
		r.Use(m.Authenticate)

		r.Get("/bookings", c.Booking.GetBookings)
		r.Get("/bookings/{id}", c.Booking.GetBookingByID)
		r.Post("/bookings", c.Booking.CreateBooking)
		r.Post("/create-payment-intent", c.Payment.CreatePaymentIntent)
		r.Post("/payments", c.Payment.RecordPayment)
		r.Get("/users/admin/{email}", c.User.CheckAdmin)
	})

	// Routes behind the admin role
	router.Group(func(r chi.Router) {
		r.Use(m.Authenticate)
		r.Use(m.RequireAdmin)

		r.Get("/users", c.User.GetAllUsers)
		r.Put("/users/admin/{id}", c.User.PromoteToAdmin)
		r.Get("/doctors", c.Doctor.GetAllDoctors)
		r.Post("/doctors", c.Doctor.CreateDoctor)
		r.Delete("/doctors/{id}", c.Doctor.DeleteDoctor)
	})
}
