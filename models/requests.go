package models

import "strings"

// Create requests carry the mandatory fields as values; optional enumerated
// fields fall back to their column default when omitted. Update requests
// carry pointers so only the fields present in the payload are written.

func orDefault(value, def string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return def
	}
	return value
}

func dateOrToday(d Date) Date {
	if d.IsZero() {
		return Today()
	}
	return d
}

func nullableText(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

// put copies v into fields when the payload carried it
func put[T any](fields map[string]any, column string, v *T) {
	if v != nil {
		fields[column] = *v
	}
}

func putText(fields map[string]any, column string, v *string) {
	if v != nil {
		fields[column] = strings.TrimSpace(*v)
	}
}

func putAmount(fields map[string]any, column string, v *string) error {
	if v == nil {
		return nil
	}
	amount, err := ParseAmount(column, *v)
	if err != nil {
		return err
	}
	fields[column] = amount
	return nil
}

// CreateClienteRequest registers a customer
type CreateClienteRequest struct {
	Nombres        string `json:"nombres" binding:"required,notblank,max=100"`
	Apellidos      string `json:"apellidos" binding:"required,notblank,max=100"`
	DNI            string `json:"dni" binding:"max=20"`
	Direccion      string `json:"direccion"`
	Distrito       string `json:"distrito" binding:"max=100"`
	Telefono       string `json:"telefono" binding:"max=20"`
	EstadoServicio string `json:"estado_servicio" binding:"omitempty,oneof=activo suspendido inactivo"`
}

func (r CreateClienteRequest) Record() (Cliente, error) {
	return Cliente{
		Nombres:        strings.TrimSpace(r.Nombres),
		Apellidos:      strings.TrimSpace(r.Apellidos),
		DNI:            strings.TrimSpace(r.DNI),
		Direccion:      strings.TrimSpace(r.Direccion),
		Distrito:       strings.TrimSpace(r.Distrito),
		Telefono:       strings.TrimSpace(r.Telefono),
		EstadoServicio: orDefault(r.EstadoServicio, "activo"),
	}, nil
}

// UpdateClienteRequest edits a customer
type UpdateClienteRequest struct {
	Nombres        *string `json:"nombres" binding:"omitempty,notblank,max=100"`
	Apellidos      *string `json:"apellidos" binding:"omitempty,notblank,max=100"`
	DNI            *string `json:"dni" binding:"omitempty,max=20"`
	Direccion      *string `json:"direccion"`
	Distrito       *string `json:"distrito" binding:"omitempty,max=100"`
	Telefono       *string `json:"telefono" binding:"omitempty,max=20"`
	EstadoServicio *string `json:"estado_servicio" binding:"omitempty,oneof=activo suspendido inactivo"`
}

func (r UpdateClienteRequest) Updates() (map[string]any, error) {
	fields := make(map[string]any)
	putText(fields, "nombres", r.Nombres)
	putText(fields, "apellidos", r.Apellidos)
	putText(fields, "dni", r.DNI)
	putText(fields, "direccion", r.Direccion)
	putText(fields, "distrito", r.Distrito)
	putText(fields, "telefono", r.Telefono)
	put(fields, "estado_servicio", r.EstadoServicio)
	return fields, nil
}

// CreateContratoRequest registers a contract; monto_mensual arrives as text
type CreateContratoRequest struct {
	IDCliente    string `json:"id_cliente" binding:"required,notblank"`
	TipoServicio string `json:"tipo_servicio" binding:"omitempty,oneof=internet cable telefonia combo"`
	FechaInicio  Date   `json:"fecha_inicio"`
	Estado       string `json:"estado" binding:"omitempty,oneof=activo suspendido cancelado"`
	MontoMensual string `json:"monto_mensual" binding:"required"`
}

func (r CreateContratoRequest) Record() (Contrato, error) {
	monto, err := ParseAmount("monto_mensual", r.MontoMensual)
	if err != nil {
		return Contrato{}, err
	}
	return Contrato{
		IDCliente:    strings.TrimSpace(r.IDCliente),
		TipoServicio: orDefault(r.TipoServicio, "internet"),
		FechaInicio:  dateOrToday(r.FechaInicio),
		Estado:       orDefault(r.Estado, "activo"),
		MontoMensual: monto,
	}, nil
}

// UpdateContratoRequest edits a contract
type UpdateContratoRequest struct {
	IDCliente    *string `json:"id_cliente" binding:"omitempty,notblank"`
	TipoServicio *string `json:"tipo_servicio" binding:"omitempty,oneof=internet cable telefonia combo"`
	FechaInicio  *Date   `json:"fecha_inicio"`
	Estado       *string `json:"estado" binding:"omitempty,oneof=activo suspendido cancelado"`
	MontoMensual *string `json:"monto_mensual"`
}

func (r UpdateContratoRequest) Updates() (map[string]any, error) {
	fields := make(map[string]any)
	putText(fields, "id_cliente", r.IDCliente)
	put(fields, "tipo_servicio", r.TipoServicio)
	put(fields, "fecha_inicio", r.FechaInicio)
	put(fields, "estado", r.Estado)
	if err := putAmount(fields, "monto_mensual", r.MontoMensual); err != nil {
		return nil, err
	}
	return fields, nil
}

// CreateInstalacionRequest schedules an installation
type CreateInstalacionRequest struct {
	IDCliente            string   `json:"id_cliente" binding:"required,notblank"`
	DireccionInstalacion string   `json:"direccion_instalacion" binding:"required,notblank"`
	FechaInstalacion     Date     `json:"fecha_instalacion"`
	TecnicoResponsable   string   `json:"tecnico_responsable" binding:"required,notblank,max=150"`
	Observaciones        string   `json:"observaciones"`
	Latitud              *float64 `json:"latitud" binding:"omitempty,gte=-90,lte=90"`
	Longitud             *float64 `json:"longitud" binding:"omitempty,gte=-180,lte=180"`
	Estado               string   `json:"estado" binding:"omitempty,oneof=programada completada cancelada pendiente"`
}

func (r CreateInstalacionRequest) Record() (Instalacion, error) {
	return Instalacion{
		IDCliente:            strings.TrimSpace(r.IDCliente),
		DireccionInstalacion: strings.TrimSpace(r.DireccionInstalacion),
		FechaInstalacion:     dateOrToday(r.FechaInstalacion),
		TecnicoResponsable:   strings.TrimSpace(r.TecnicoResponsable),
		Observaciones:        strings.TrimSpace(r.Observaciones),
		Latitud:              r.Latitud,
		Longitud:             r.Longitud,
		Estado:               orDefault(r.Estado, "programada"),
	}, nil
}

// UpdateInstalacionRequest edits an installation
type UpdateInstalacionRequest struct {
	IDCliente            *string  `json:"id_cliente" binding:"omitempty,notblank"`
	DireccionInstalacion *string  `json:"direccion_instalacion" binding:"omitempty,notblank"`
	FechaInstalacion     *Date    `json:"fecha_instalacion"`
	TecnicoResponsable   *string  `json:"tecnico_responsable" binding:"omitempty,notblank,max=150"`
	Observaciones        *string  `json:"observaciones"`
	Latitud              *float64 `json:"latitud" binding:"omitempty,gte=-90,lte=90"`
	Longitud             *float64 `json:"longitud" binding:"omitempty,gte=-180,lte=180"`
	Estado               *string  `json:"estado" binding:"omitempty,oneof=programada completada cancelada pendiente"`
}

func (r UpdateInstalacionRequest) Updates() (map[string]any, error) {
	fields := make(map[string]any)
	putText(fields, "id_cliente", r.IDCliente)
	putText(fields, "direccion_instalacion", r.DireccionInstalacion)
	put(fields, "fecha_instalacion", r.FechaInstalacion)
	putText(fields, "tecnico_responsable", r.TecnicoResponsable)
	putText(fields, "observaciones", r.Observaciones)
	put(fields, "latitud", r.Latitud)
	put(fields, "longitud", r.Longitud)
	put(fields, "estado", r.Estado)
	return fields, nil
}

// CreatePagoRequest records a payment; monto arrives as text
type CreatePagoRequest struct {
	IDCliente  string `json:"id_cliente" binding:"required,notblank"`
	Monto      string `json:"monto" binding:"required"`
	FechaPago  Date   `json:"fecha_pago"`
	EstadoPago string `json:"estado_pago" binding:"omitempty,oneof=completado pendiente rechazado"`
	MetodoPago string `json:"metodo_pago" binding:"max=30"`
}

func (r CreatePagoRequest) Record() (Pago, error) {
	monto, err := ParseAmount("monto", r.Monto)
	if err != nil {
		return Pago{}, err
	}
	return Pago{
		IDCliente:  strings.TrimSpace(r.IDCliente),
		Monto:      monto,
		FechaPago:  dateOrToday(r.FechaPago),
		EstadoPago: orDefault(r.EstadoPago, "completado"),
		MetodoPago: orDefault(r.MetodoPago, "efectivo"),
	}, nil
}

// UpdatePagoRequest edits a payment
type UpdatePagoRequest struct {
	IDCliente  *string `json:"id_cliente" binding:"omitempty,notblank"`
	Monto      *string `json:"monto"`
	FechaPago  *Date   `json:"fecha_pago"`
	EstadoPago *string `json:"estado_pago" binding:"omitempty,oneof=completado pendiente rechazado"`
	MetodoPago *string `json:"metodo_pago" binding:"omitempty,notblank,max=30"`
}

func (r UpdatePagoRequest) Updates() (map[string]any, error) {
	fields := make(map[string]any)
	putText(fields, "id_cliente", r.IDCliente)
	if err := putAmount(fields, "monto", r.Monto); err != nil {
		return nil, err
	}
	put(fields, "fecha_pago", r.FechaPago)
	put(fields, "estado_pago", r.EstadoPago)
	putText(fields, "metodo_pago", r.MetodoPago)
	return fields, nil
}

// CreateIncidenciaRequest reports an incident
type CreateIncidenciaRequest struct {
	IDCliente      string `json:"id_cliente" binding:"required,notblank"`
	TipoIncidencia string `json:"tipo_incidencia" binding:"omitempty,oneof=falla_servicio soporte_tecnico facturacion otro"`
	Descripcion    string `json:"descripcion" binding:"required,notblank"`
	Fecha          Date   `json:"fecha"`
	Estado         string `json:"estado" binding:"omitempty,oneof=abierta en_proceso resuelta cerrada"`
	Prioridad      string `json:"prioridad" binding:"omitempty,oneof=baja media alta critica"`
}

func (r CreateIncidenciaRequest) Record() (Incidencia, error) {
	return Incidencia{
		IDCliente:      strings.TrimSpace(r.IDCliente),
		TipoIncidencia: orDefault(r.TipoIncidencia, "falla_servicio"),
		Descripcion:    strings.TrimSpace(r.Descripcion),
		Fecha:          dateOrToday(r.Fecha),
		Estado:         orDefault(r.Estado, "abierta"),
		Prioridad:      orDefault(r.Prioridad, "media"),
	}, nil
}

// UpdateIncidenciaRequest edits an incident
type UpdateIncidenciaRequest struct {
	IDCliente      *string `json:"id_cliente" binding:"omitempty,notblank"`
	TipoIncidencia *string `json:"tipo_incidencia" binding:"omitempty,oneof=falla_servicio soporte_tecnico facturacion otro"`
	Descripcion    *string `json:"descripcion" binding:"omitempty,notblank"`
	Fecha          *Date   `json:"fecha"`
	Estado         *string `json:"estado" binding:"omitempty,oneof=abierta en_proceso resuelta cerrada"`
	Prioridad      *string `json:"prioridad" binding:"omitempty,oneof=baja media alta critica"`
}

func (r UpdateIncidenciaRequest) Updates() (map[string]any, error) {
	fields := make(map[string]any)
	putText(fields, "id_cliente", r.IDCliente)
	put(fields, "tipo_incidencia", r.TipoIncidencia)
	putText(fields, "descripcion", r.Descripcion)
	put(fields, "fecha", r.Fecha)
	put(fields, "estado", r.Estado)
	put(fields, "prioridad", r.Prioridad)
	return fields, nil
}

// CreateAccionPreventivaRequest plans a preventive action; it only ever
// touches preventive-action columns
type CreateAccionPreventivaRequest struct {
	IDIncidencia string `json:"id_incidencia" binding:"required,notblank"`
	Descripcion  string `json:"descripcion" binding:"required,notblank"`
	Fecha        Date   `json:"fecha"`
	Estado       string `json:"estado" binding:"omitempty,oneof=planificada en_ejecucion completada"`
}

func (r CreateAccionPreventivaRequest) Record() (AccionPreventiva, error) {
	return AccionPreventiva{
		IDIncidencia: strings.TrimSpace(r.IDIncidencia),
		Descripcion:  strings.TrimSpace(r.Descripcion),
		Fecha:        dateOrToday(r.Fecha),
		Estado:       orDefault(r.Estado, "planificada"),
	}, nil
}

// UpdateAccionPreventivaRequest edits a preventive action
type UpdateAccionPreventivaRequest struct {
	IDIncidencia *string `json:"id_incidencia" binding:"omitempty,notblank"`
	Descripcion  *string `json:"descripcion" binding:"omitempty,notblank"`
	Fecha        *Date   `json:"fecha"`
	Estado       *string `json:"estado" binding:"omitempty,oneof=planificada en_ejecucion completada"`
}

func (r UpdateAccionPreventivaRequest) Updates() (map[string]any, error) {
	fields := make(map[string]any)
	putText(fields, "id_incidencia", r.IDIncidencia)
	putText(fields, "descripcion", r.Descripcion)
	put(fields, "fecha", r.Fecha)
	put(fields, "estado", r.Estado)
	return fields, nil
}

// CreateItemInventarioRequest adds a stock item. An omitted cantidad means one unit.
type CreateItemInventarioRequest struct {
	Nombre           string `json:"nombre" binding:"required,notblank,max=150"`
	Tipo             string `json:"tipo" binding:"omitempty,oneof=modem cable fibra conector herramienta otro"`
	Modelo           string `json:"modelo" binding:"max=100"`
	Serie            string `json:"serie" binding:"max=100"`
	Estado           string `json:"estado" binding:"omitempty,oneof=nuevo usado dañado en_uso"`
	Cantidad         *int   `json:"cantidad" binding:"omitempty,min=0"`
	FechaAdquisicion Date   `json:"fecha_adquisicion"`
}

func (r CreateItemInventarioRequest) Record() (ItemInventario, error) {
	cantidad := 1
	if r.Cantidad != nil {
		cantidad = *r.Cantidad
	}
	return ItemInventario{
		Nombre:           strings.TrimSpace(r.Nombre),
		Tipo:             orDefault(r.Tipo, "otro"),
		Modelo:           strings.TrimSpace(r.Modelo),
		Serie:            nullableText(r.Serie),
		Estado:           orDefault(r.Estado, "nuevo"),
		Cantidad:         cantidad,
		FechaAdquisicion: dateOrToday(r.FechaAdquisicion),
	}, nil
}

// UpdateItemInventarioRequest edits a stock item. An empty serie clears it.
type UpdateItemInventarioRequest struct {
	Nombre           *string `json:"nombre" binding:"omitempty,notblank,max=150"`
	Tipo             *string `json:"tipo" binding:"omitempty,oneof=modem cable fibra conector herramienta otro"`
	Modelo           *string `json:"modelo" binding:"omitempty,max=100"`
	Serie            *string `json:"serie" binding:"omitempty,max=100"`
	Estado           *string `json:"estado" binding:"omitempty,oneof=nuevo usado dañado en_uso"`
	Cantidad         *int    `json:"cantidad" binding:"omitempty,min=0"`
	FechaAdquisicion *Date   `json:"fecha_adquisicion"`
}

func (r UpdateItemInventarioRequest) Updates() (map[string]any, error) {
	fields := make(map[string]any)
	putText(fields, "nombre", r.Nombre)
	put(fields, "tipo", r.Tipo)
	putText(fields, "modelo", r.Modelo)
	if r.Serie != nil {
		fields["serie"] = nullableText(*r.Serie)
	}
	put(fields, "estado", r.Estado)
	put(fields, "cantidad", r.Cantidad)
	put(fields, "fecha_adquisicion", r.FechaAdquisicion)
	return fields, nil
}

// CreateUsuarioRequest opens an operator account. The password is hashed by
// the caller and never stored as given.
type CreateUsuarioRequest struct {
	Nombre   string `json:"nombre" binding:"required,notblank,max=150"`
	Usuario  string `json:"usuario" binding:"required,notblank,max=64"`
	Rol      string `json:"rol" binding:"omitempty,oneof=administrador tecnico operador"`
	Estado   *bool  `json:"estado"`
	Password string `json:"password" binding:"required,min=6"`
}

func (r CreateUsuarioRequest) Record() (Usuario, error) {
	estado := true
	if r.Estado != nil {
		estado = *r.Estado
	}
	return Usuario{
		Nombre:  strings.TrimSpace(r.Nombre),
		Usuario: strings.TrimSpace(r.Usuario),
		Rol:     orDefault(r.Rol, "operador"),
		Estado:  estado,
	}, nil
}

// UpdateUsuarioRequest edits an account; a present password is re-hashed by the caller
type UpdateUsuarioRequest struct {
	Nombre   *string `json:"nombre" binding:"omitempty,notblank,max=150"`
	Usuario  *string `json:"usuario" binding:"omitempty,notblank,max=64"`
	Rol      *string `json:"rol" binding:"omitempty,oneof=administrador tecnico operador"`
	Estado   *bool   `json:"estado"`
	Password *string `json:"password" binding:"omitempty,min=6"`
}

func (r UpdateUsuarioRequest) Updates() (map[string]any, error) {
	fields := make(map[string]any)
	putText(fields, "nombre", r.Nombre)
	putText(fields, "usuario", r.Usuario)
	put(fields, "rol", r.Rol)
	put(fields, "estado", r.Estado)
	return fields, nil
}
