// Package message 提供依錯誤種類索引的多語系訊息表
package message

type Key string

const (
	Internal             Key = "internal"
	InvalidBody          Key = "invalid_body"
	NotFound             Key = "not_found"
	UserNotFound         Key = "user_not_found"
	EventNotFound        Key = "event_not_found"
	NotificationNotFound Key = "notification_not_found"
	EmailTaken           Key = "email_taken"
	EmailRequired        Key = "email_required"
	AlreadyAttending     Key = "already_attending"
	InvalidDateRange     Key = "invalid_date_range"
	ReadIsTerminal       Key = "read_is_terminal"
	InvalidCredentials   Key = "invalid_credentials"
	Unauthorized         Key = "unauthorized"
	TooManyRequests      Key = "too_many_requests"
	UserDeleted          Key = "user_deleted"
	EventDeleted         Key = "event_deleted"
	NotificationDeleted  Key = "notification_deleted"
	AttendeeRemoved      Key = "attendee_removed"
	WelcomeTitle         Key = "welcome_title"
	WelcomeBody          Key = "welcome_body"
)

const DefaultLocale = "es"

var catalogs = map[string]map[Key]string{
	"es": {
		Internal:             "Error interno del servidor",
		InvalidBody:          "Datos de la solicitud inválidos",
		NotFound:             "Recurso no encontrado",
		UserNotFound:         "Usuario no encontrado",
		EventNotFound:        "Evento no encontrado",
		NotificationNotFound: "Notificación no encontrada",
		EmailTaken:           "El correo electrónico ya está registrado",
		EmailRequired:        "El correo electrónico es requerido",
		AlreadyAttending:     "El usuario ya es asistente del evento",
		InvalidDateRange:     "La fecha de fin no puede ser anterior a la fecha de inicio",
		ReadIsTerminal:       "Una notificación leída no puede marcarse como no leída",
		InvalidCredentials:   "Credenciales inválidas",
		Unauthorized:         "No autorizado",
		TooManyRequests:      "Demasiadas solicitudes, intente más tarde",
		UserDeleted:          "Usuario eliminado correctamente",
		EventDeleted:         "Evento eliminado correctamente",
		NotificationDeleted:  "Notificación eliminada correctamente",
		AttendeeRemoved:      "Asistente eliminado correctamente",
		WelcomeTitle:         "Bienvenido",
		WelcomeBody:          "Tu cuenta ha sido creada correctamente",
	},
	"en": {
		Internal:             "Internal server error",
		InvalidBody:          "Invalid request data",
		NotFound:             "Resource not found",
		UserNotFound:         "User not found",
		EventNotFound:        "Event not found",
		NotificationNotFound: "Notification not found",
		EmailTaken:           "Email is already registered",
		EmailRequired:        "Email is required",
		AlreadyAttending:     "User is already attending the event",
		InvalidDateRange:     "End date cannot be before start date",
		ReadIsTerminal:       "A read notification cannot be marked as unread",
		InvalidCredentials:   "Invalid credentials",
		Unauthorized:         "Unauthorized",
		TooManyRequests:      "Too many requests, try again later",
		UserDeleted:          "User deleted successfully",
		EventDeleted:         "Event deleted successfully",
		NotificationDeleted:  "Notification deleted successfully",
		AttendeeRemoved:      "Attendee removed successfully",
		WelcomeTitle:         "Welcome",
		WelcomeBody:          "Your account has been created",
	},
}

// Catalog 綁定單一語系；未知語系退回 DefaultLocale
type Catalog struct {
	locale string
}

func New(locale string) *Catalog {
	if _, ok := catalogs[locale]; !ok {
		locale = DefaultLocale
	}
	return &Catalog{locale: locale}
}

func (c *Catalog) Locale() string { return c.locale }

// Get 回傳訊息；語系缺漏時使用預設語系，再缺則回傳 key 本身
func (c *Catalog) Get(k Key) string {
	if msg, ok := catalogs[c.locale][k]; ok {
		return msg
	}
	if msg, ok := catalogs[DefaultLocale][k]; ok {
		return msg
	}
	return string(k)
}
