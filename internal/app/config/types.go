package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		Logger   Logger
	}
	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type InternalConfig struct {
	App            App
	JWT            JWT
	PaymentGateway PaymentGateway
}

type App struct {
	Env                             string
	Port                            string
	MaxRequests                     int
	ShutdownTimeoutInSeconds        int
	AvailabilityCacheTTLInSeconds   int
	RequestTimeoutInSeconds         int
	PaymentGatewayRequestsPerSecond int
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}

type PaymentGateway struct {
	BaseUrl   string
	SecretKey string
}
