package service

type Services struct {
	Frequency *FrequencyService
}

func NewServices(maxLength int) *Services {
	return &Services{
		Frequency: NewFrequencyService(maxLength),
	}
}
