package catalog

var builtin = map[BusinessType][]ServiceOption{
	BusinessBarber: {
		{ID: 1, Name: "Corte de cabello", Price: 350, DurationMin: 30, Description: "Corte de cabello con máquina y tijera"},
		{ID: 2, Name: "Barba", Price: 200, DurationMin: 20, Description: "Recorte y perfilado de barba"},
		{ID: 3, Name: "Corte + Barba", Price: 500, DurationMin: 45, Description: "Combo completo de corte y barba"},
		{ID: 4, Name: "Afeitado clásico", Price: 300, DurationMin: 25, Description: "Afeitado tradicional con navaja"},
		{ID: 5, Name: "Diseño de barba", Price: 250, DurationMin: 30, Description: "Diseño personalizado de barba"},
	},
	BusinessPsychologist: {
		{ID: 1, Name: "Consulta individual", Price: 1200, DurationMin: 60, Description: "Sesión de terapia individual"},
		{ID: 2, Name: "Terapia de pareja", Price: 1500, DurationMin: 90, Description: "Sesión de terapia para parejas"},
		{ID: 3, Name: "Terapia familiar", Price: 1800, DurationMin: 90, Description: "Sesión de terapia familiar"},
		{ID: 4, Name: "Consulta inicial", Price: 1000, DurationMin: 45, Description: "Primera consulta de evaluación"},
		{ID: 5, Name: "Seguimiento breve", Price: 800, DurationMin: 30, Description: "Consulta de seguimiento"},
	},
	BusinessDentist: {
		{ID: 1, Name: "Consulta general", Price: 500, DurationMin: 30, Description: "Revisión dental general"},
		{ID: 2, Name: "Limpieza dental", Price: 800, DurationMin: 45, Description: "Profilaxis dental profesional"},
		{ID: 3, Name: "Empaste simple", Price: 1200, DurationMin: 60, Description: "Restauración de una pieza dental"},
		{ID: 4, Name: "Blanqueamiento", Price: 2500, DurationMin: 90, Description: "Blanqueamiento dental profesional"},
		{ID: 5, Name: "Extracción simple", Price: 1500, DurationMin: 45, Description: "Extracción de pieza dental"},
		{ID: 6, Name: "Ortodoncia consulta", Price: 600, DurationMin: 30, Description: "Evaluación para ortodoncia"},
	},
	BusinessOther: {
		{ID: 1, Name: "Servicio básico", Price: 500, DurationMin: 30, Description: "Servicio estándar"},
		{ID: 2, Name: "Servicio premium", Price: 1000, DurationMin: 60, Description: "Servicio premium completo"},
		{ID: 3, Name: "Consulta", Price: 300, DurationMin: 20, Description: "Consulta general"},
	},
}
