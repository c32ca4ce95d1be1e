package config

import "time"

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	BaseURL     string `env:"BASE_URL" envDefault:"http://localhost:3000"`
	WebDir      string `env:"WEB_DIR" envDefault:"web"`

	// firebase | sql
	RecordStore string   `env:"RECORD_STORE" envDefault:"firebase"`
	Database    Database `envPrefix:"DATABASE_"`
	Firebase    Firebase `envPrefix:"FIREBASE_"`

	Paymob Paymob `envPrefix:"PAYMOB_"`
}

type Paymob struct {
	APIKey        string        `env:"API_KEY,required"`
	IntegrationID int           `env:"INTEGRATION_ID,required"`
	IframeID      string        `env:"IFRAME_ID,required"`
	BaseApiURL    string        `env:"BASE_API_URL" envDefault:"https://accept.paymob.com/api"`
	IframeBaseURL string        `env:"IFRAME_BASE_URL" envDefault:"https://accept.paymobsolutions.com/api/acceptance/iframes"`
	Currency      string        `env:"CURRENCY" envDefault:"EGP"`
	HTTPTimeout   time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`

	Billing Billing `envPrefix:"BILLING_"`
}

// Billing is sent with every payment key request. The provider rejects the
// request without it, and buyers are not asked for billing details, so the
// defaults are placeholders.
type Billing struct {
	FirstName      string `env:"FIRST_NAME" envDefault:"student"`
	LastName       string `env:"LAST_NAME" envDefault:"user"`
	Email          string `env:"EMAIL" envDefault:"customer@example.com"`
	PhoneNumber    string `env:"PHONE_NUMBER" envDefault:"0000000000"`
	Apartment      string `env:"APARTMENT" envDefault:"NA"`
	Floor          string `env:"FLOOR" envDefault:"NA"`
	Street         string `env:"STREET" envDefault:"NA"`
	Building       string `env:"BUILDING" envDefault:"NA"`
	ShippingMethod string `env:"SHIPPING_METHOD" envDefault:"NA"`
	PostalCode     string `env:"POSTAL_CODE" envDefault:"NA"`
	City           string `env:"CITY" envDefault:"NA"`
	Country        string `env:"COUNTRY" envDefault:"EG"`
	State          string `env:"STATE" envDefault:"NA"`
}

type Database struct {
	Driver string `env:"DRIVER" envDefault:"sqlite"` // sqlite, mysql, postgres
	URL    string `env:"URL" envDefault:"purchases.db"`
}

type Firebase struct {
	ProjectID          string `env:"PROJECT_ID"`
	DatabaseURL        string `env:"DATABASE_URL"`
	ServiceAccountJSON string `env:"SERVICE_ACCOUNT_JSON"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"3000"`
}
