package cmd

type Config struct {
	HTTPPort     string
	AmqpURL      string
	OutputDir    string
	RestaurantID string
	AsyncRouting bool
}
