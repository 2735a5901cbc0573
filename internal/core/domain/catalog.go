package domain

// BarberService is an entry of the fixed barbershop service menu.
type BarberService struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
}

var barberServices = [...]BarberService{
	{ID: "1", Name: "Corte Masculino", Price: 45.00, Description: "Corte moderno com acabamento perfeito", Icon: "scissors"},
	{ID: "2", Name: "Barba Completa", Price: 35.00, Description: "Barba alinhada com toalha quente", Icon: "beard"},
	{ID: "3", Name: "Corte + Barba", Price: 70.00, Description: "Pacote completo com desconto", Icon: "package"},
	{ID: "4", Name: "Sobrancelha", Price: 15.00, Description: "Design de sobrancelha masculina", Icon: "eyebrow"},
}

// BarberServices returns a copy of the service menu.
func BarberServices() []BarberService {
	out := make([]BarberService, len(barberServices))
	copy(out, barberServices[:])
	return out
}

// IsBarberService reports whether name is on the service menu.
func IsBarberService(name string) bool {
	for _, s := range barberServices {
		if s.Name == name {
			return true
		}
	}
	return false
}
