package models

// Badge tones used by the dashboard; unknown values fall back to ToneNeutral
const (
	ToneGreen   = "green"
	ToneYellow  = "yellow"
	ToneRed     = "red"
	ToneOrange  = "orange"
	ToneBlue    = "blue"
	ToneNeutral = "gray"
)

// Vocabulary maps every value an enumerated column may take to its badge tone
type Vocabulary map[string]string

// Badge returns the badge tone for value. Unrecognized values get the neutral tone.
func (v Vocabulary) Badge(value string) string {
	if tone, ok := v[value]; ok {
		return tone
	}
	return ToneNeutral
}

var (
	EstadoServicio = Vocabulary{"activo": ToneGreen, "suspendido": ToneYellow, "inactivo": ToneRed}

	TipoServicio = Vocabulary{"internet": ToneBlue, "cable": ToneOrange, "telefonia": ToneYellow, "combo": ToneGreen}

	EstadoContrato = Vocabulary{"activo": ToneGreen, "suspendido": ToneYellow, "cancelado": ToneRed}

	EstadoInstalacion = Vocabulary{"programada": ToneYellow, "completada": ToneGreen, "cancelada": ToneRed, "pendiente": ToneOrange}

	EstadoPago = Vocabulary{"completado": ToneGreen, "pendiente": ToneYellow, "rechazado": ToneRed}

	TipoIncidencia = Vocabulary{"falla_servicio": ToneRed, "soporte_tecnico": ToneBlue, "facturacion": ToneYellow, "otro": ToneNeutral}

	EstadoIncidencia = Vocabulary{"abierta": ToneRed, "en_proceso": ToneYellow, "resuelta": ToneGreen, "cerrada": ToneNeutral}

	PrioridadIncidencia = Vocabulary{"baja": ToneBlue, "media": ToneYellow, "alta": ToneOrange, "critica": ToneRed}

	EstadoAccion = Vocabulary{"planificada": ToneYellow, "en_ejecucion": ToneBlue, "completada": ToneGreen}

	TipoInventario = Vocabulary{"modem": ToneBlue, "cable": ToneNeutral, "fibra": ToneOrange, "conector": ToneNeutral, "herramienta": ToneYellow, "otro": ToneNeutral}

	EstadoInventario = Vocabulary{"nuevo": ToneGreen, "usado": ToneYellow, "dañado": ToneRed, "en_uso": ToneBlue}

	RolUsuario = Vocabulary{"administrador": ToneRed, "tecnico": ToneBlue, "operador": ToneGreen}
)
