package tests

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"sallepos/internal/model"
	"sallepos/internal/repository"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────
// In-memory repository implementations. Services run with a nil *gorm.DB, so
// the transactional paths execute fn(nil) directly.

// stubOrdenRepo is an in-memory OrdenRepository.
type stubOrdenRepo struct {
	ordenes map[string]*model.Orden
}

func newStubOrdenRepo() *stubOrdenRepo {
	return &stubOrdenRepo{ordenes: make(map[string]*model.Orden)}
}

func (r *stubOrdenRepo) Save(_ context.Context, o *model.Orden) error {
	cp := *o
	r.ordenes[o.OrdenID] = &cp
	return nil
}

func (r *stubOrdenRepo) Get(_ context.Context, ordenID string) (*model.Orden, error) {
	o, ok := r.ordenes[ordenID]
	if !ok {
		return nil, repository.ErrOrdenNoEncontrada
	}
	cp := *o
	return &cp, nil
}

func (r *stubOrdenRepo) Delete(_ context.Context, ordenID string) error {
	delete(r.ordenes, ordenID)
	return nil
}

func (r *stubOrdenRepo) ListAll(_ context.Context) ([]model.Orden, error) {
	var out []model.Orden
	for _, o := range r.ordenes {
		out = append(out, *o)
	}
	return out, nil
}

var _ repository.OrdenRepository = (*stubOrdenRepo)(nil)

// stubSesionRepo keeps session and drawer state in plain maps.
type stubSesionRepo struct {
	sesiones    map[string]*model.Empleado
	caja        map[string]decimal.Decimal
	cajaInicial map[string]decimal.Decimal
	fechaInicio map[string]time.Time
}

func newStubSesionRepo() *stubSesionRepo {
	return &stubSesionRepo{
		sesiones:    make(map[string]*model.Empleado),
		caja:        make(map[string]decimal.Decimal),
		cajaInicial: make(map[string]decimal.Decimal),
		fechaInicio: make(map[string]time.Time),
	}
}

func (r *stubSesionRepo) SaveSesion(_ context.Context, id string, e *model.Empleado) error {
	r.sesiones[id] = e
	return nil
}

func (r *stubSesionRepo) GetSesion(_ context.Context, id string) (*model.Empleado, error) {
	e, ok := r.sesiones[id]
	if !ok {
		return nil, repository.ErrSesionNoEncontrada
	}
	return e, nil
}

func (r *stubSesionRepo) SetCaja(_ context.Context, id string, m decimal.Decimal) error {
	r.caja[id] = m
	return nil
}

func (r *stubSesionRepo) GetCaja(_ context.Context, id string) (decimal.Decimal, bool, error) {
	m, ok := r.caja[id]
	return m, ok, nil
}

func (r *stubSesionRepo) IncrementarCaja(_ context.Context, id string, delta decimal.Decimal) (decimal.Decimal, error) {
	nuevo := r.caja[id].Add(delta)
	r.caja[id] = nuevo
	return nuevo, nil
}

func (r *stubSesionRepo) SetCajaInicial(_ context.Context, id string, m decimal.Decimal) error {
	r.cajaInicial[id] = m
	return nil
}

func (r *stubSesionRepo) GetCajaInicial(_ context.Context, id string) (decimal.Decimal, bool, error) {
	m, ok := r.cajaInicial[id]
	return m, ok, nil
}

func (r *stubSesionRepo) SetFechaInicio(_ context.Context, id string, t time.Time) error {
	r.fechaInicio[id] = t
	return nil
}

func (r *stubSesionRepo) GetFechaInicio(_ context.Context, id string) (time.Time, bool, error) {
	t, ok := r.fechaInicio[id]
	return t, ok, nil
}

func (r *stubSesionRepo) LimpiarSesion(_ context.Context, id string) error {
	delete(r.sesiones, id)
	delete(r.caja, id)
	delete(r.cajaInicial, id)
	delete(r.fechaInicio, id)
	return nil
}

var _ repository.SesionRepository = (*stubSesionRepo)(nil)

// stubVentaRepo records created sales and answers the aggregate queries.
type stubVentaRepo struct {
	ventas []*model.Venta
	seq    uint
	// failCreate forces Create to error, for transaction tests
	failCreate bool
}

func newStubVentaRepo() *stubVentaRepo { return &stubVentaRepo{} }

func (r *stubVentaRepo) Create(_ context.Context, _ *gorm.DB, v *model.Venta) error {
	if r.failCreate {
		return errors.New("insert failed")
	}
	r.seq++
	v.ID = r.seq
	if v.FechaVenta.IsZero() {
		v.FechaVenta = time.Now()
	}
	r.ventas = append(r.ventas, v)
	return nil
}

func (r *stubVentaRepo) FindByID(_ context.Context, id uint) (*model.Venta, error) {
	for _, v := range r.ventas {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubVentaRepo) ResumenTurno(_ context.Context, cajeroID uint, desde time.Time) (*repository.ResumenTurno, error) {
	res := &repository.ResumenTurno{TotalVentas: decimal.Zero}
	for _, v := range r.ventas {
		if v.CajeroID == cajeroID && !v.FechaVenta.Before(desde) {
			res.CantidadOrdenes++
			res.TotalVentas = res.TotalVentas.Add(v.Total)
		}
	}
	return res, nil
}

func (r *stubVentaRepo) VentasTurno(_ context.Context, cajeroID uint, desde time.Time) ([]model.Venta, error) {
	var out []model.Venta
	for i := len(r.ventas) - 1; i >= 0; i-- {
		v := r.ventas[i]
		if v.CajeroID == cajeroID && !v.FechaVenta.Before(desde) {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *stubVentaRepo) Recientes(_ context.Context, limit int) ([]model.Venta, error) {
	var out []model.Venta
	for i := len(r.ventas) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, *r.ventas[i])
	}
	return out, nil
}

func (r *stubVentaRepo) ResumenFinanciero(_ context.Context, desde, hasta time.Time) (*repository.ResumenFinanciero, error) {
	res := &repository.ResumenFinanciero{TotalVentas: decimal.Zero, TotalCostos: decimal.Zero}
	for _, v := range r.ventas {
		if v.FechaVenta.Before(desde) || !v.FechaVenta.Before(hasta) {
			continue
		}
		res.CantidadVentas++
		res.TotalVentas = res.TotalVentas.Add(v.Total)
		for _, it := range v.Items {
			res.TotalCostos = res.TotalCostos.Add(it.Costo.Mul(decimal.NewFromInt(int64(it.Cantidad))))
		}
	}
	return res, nil
}

func (r *stubVentaRepo) VentasPorEmpleado(_ context.Context, desde, hasta time.Time) ([]repository.VentasEmpleado, error) {
	byCajero := make(map[uint]*repository.VentasEmpleado)
	for _, v := range r.ventas {
		if v.FechaVenta.Before(desde) || !v.FechaVenta.Before(hasta) {
			continue
		}
		row, ok := byCajero[v.CajeroID]
		if !ok {
			row = &repository.VentasEmpleado{CajeroID: v.CajeroID, CajeroNombre: v.CajeroNombre, TotalVendido: decimal.Zero}
			byCajero[v.CajeroID] = row
		}
		row.CantidadVentas++
		row.TotalVendido = row.TotalVendido.Add(v.Total)
	}
	var out []repository.VentasEmpleado
	for _, row := range byCajero {
		out = append(out, *row)
	}
	return out, nil
}

func (r *stubVentaRepo) DB() *gorm.DB { return nil }

var _ repository.VentaRepository = (*stubVentaRepo)(nil)

// stubClienteRepo is an in-memory ClienteRepository.
type stubClienteRepo struct {
	clientes map[uint]*model.Cliente
	seq      uint
	// beforeDescontar runs at the top of DescontarPuntos, to interleave a
	// concurrent mutation between the service's read and the deduction.
	beforeDescontar func()
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[uint]*model.Cliente)}
}

func (r *stubClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	r.seq++
	c.ID = r.seq
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, id uint) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, repository.ErrClienteNoEncontrado
	}
	cp := *c
	return &cp, nil
}

func (r *stubClienteRepo) FindByCorreo(_ context.Context, correo string) (*model.Cliente, error) {
	for _, c := range r.clientes {
		if c.Correo == correo {
			return c, nil
		}
	}
	return nil, repository.ErrClienteNoEncontrado
}

func (r *stubClienteRepo) List(_ context.Context) ([]model.Cliente, error) {
	var out []model.Cliente
	for _, c := range r.clientes {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubClienteRepo) Update(_ context.Context, c *model.Cliente) error {
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) Delete(_ context.Context, id uint) error {
	delete(r.clientes, id)
	return nil
}

func (r *stubClienteRepo) AgregarPuntos(_ context.Context, _ *gorm.DB, id uint, puntos int) error {
	c, ok := r.clientes[id]
	if !ok {
		return repository.ErrClienteNoEncontrado
	}
	c.PuntosAcumulados += puntos
	now := time.Now()
	c.UltimaVisita = &now
	return nil
}

func (r *stubClienteRepo) DescontarPuntos(_ context.Context, _ *gorm.DB, id uint, puntos int) error {
	if r.beforeDescontar != nil {
		r.beforeDescontar()
	}
	c, ok := r.clientes[id]
	if !ok {
		return repository.ErrClienteNoEncontrado
	}
	if c.PuntosAcumulados < puntos {
		return repository.ErrPuntosInsuficientes
	}
	c.PuntosAcumulados -= puntos
	now := time.Now()
	c.UltimaVisita = &now
	return nil
}

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)

// stubDescuentoRepo is an in-memory DescuentoRepository.
type stubDescuentoRepo struct {
	descuentos map[uint]*model.DescuentoCliente
	seq        uint
}

func newStubDescuentoRepo() *stubDescuentoRepo {
	return &stubDescuentoRepo{descuentos: make(map[uint]*model.DescuentoCliente)}
}

func (r *stubDescuentoRepo) Create(_ context.Context, d *model.DescuentoCliente) error {
	if d.ClienteID != nil {
		for _, prev := range r.descuentos {
			if prev.ClienteID != nil && *prev.ClienteID == *d.ClienteID {
				prev.Activo = false
			}
		}
	}
	r.seq++
	d.ID = r.seq
	if d.FechaInicio.IsZero() {
		d.FechaInicio = time.Now()
	}
	r.descuentos[d.ID] = d
	return nil
}

func (r *stubDescuentoRepo) FindByID(_ context.Context, id uint) (*model.DescuentoCliente, error) {
	d, ok := r.descuentos[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return d, nil
}

func (r *stubDescuentoRepo) FindActivoByCliente(_ context.Context, clienteID uint) (*model.DescuentoCliente, error) {
	for _, d := range r.descuentos {
		if d.Activo && d.ClienteID != nil && *d.ClienteID == clienteID {
			if d.FechaFin != nil && d.FechaFin.Before(time.Now()) {
				continue
			}
			return d, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubDescuentoRepo) List(_ context.Context, soloActivos bool) ([]model.DescuentoCliente, error) {
	var out []model.DescuentoCliente
	for _, d := range r.descuentos {
		if soloActivos && !d.Activo {
			continue
		}
		out = append(out, *d)
	}
	return out, nil
}

func (r *stubDescuentoRepo) Desactivar(_ context.Context, id uint) error {
	d, ok := r.descuentos[id]
	if !ok {
		return errors.New("not found")
	}
	d.Activo = false
	return nil
}

func (r *stubDescuentoRepo) EliminarPermanente(_ context.Context, id uint) error {
	delete(r.descuentos, id)
	return nil
}

var _ repository.DescuentoRepository = (*stubDescuentoRepo)(nil)

// stubAuditoriaRepo captures audit rows for assertion.
type stubAuditoriaRepo struct {
	registros []model.AuditoriaOrden
}

func (r *stubAuditoriaRepo) Create(_ context.Context, a *model.AuditoriaOrden) error {
	r.registros = append(r.registros, *a)
	return nil
}

func (r *stubAuditoriaRepo) ListByOrden(_ context.Context, ordenID string) ([]model.AuditoriaOrden, error) {
	var out []model.AuditoriaOrden
	for _, a := range r.registros {
		if a.OrdenID == ordenID {
			out = append(out, a)
		}
	}
	return out, nil
}

var _ repository.AuditoriaRepository = (*stubAuditoriaRepo)(nil)

// stubEmpleadoRepo is an in-memory EmpleadoRepository.
type stubEmpleadoRepo struct {
	empleados map[uint]*model.Empleado
	seq       uint
}

func newStubEmpleadoRepo() *stubEmpleadoRepo {
	return &stubEmpleadoRepo{empleados: make(map[uint]*model.Empleado)}
}

func (r *stubEmpleadoRepo) Create(_ context.Context, e *model.Empleado) error {
	r.seq++
	e.ID = r.seq
	r.empleados[e.ID] = e
	return nil
}

func (r *stubEmpleadoRepo) FindByID(_ context.Context, id uint) (*model.Empleado, error) {
	e, ok := r.empleados[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return e, nil
}

func (r *stubEmpleadoRepo) FindByCodigo(_ context.Context, codigo string) (*model.Empleado, error) {
	for _, e := range r.empleados {
		if e.Codigo == codigo {
			return e, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubEmpleadoRepo) List(_ context.Context) ([]model.Empleado, error) {
	var out []model.Empleado
	for _, e := range r.empleados {
		out = append(out, *e)
	}
	return out, nil
}

func (r *stubEmpleadoRepo) Update(_ context.Context, e *model.Empleado) error {
	r.empleados[e.ID] = e
	return nil
}

func (r *stubEmpleadoRepo) Delete(_ context.Context, id uint) error {
	delete(r.empleados, id)
	return nil
}

var _ repository.EmpleadoRepository = (*stubEmpleadoRepo)(nil)

// stubProductoRepo is an in-memory ProductoRepository.
type stubProductoRepo struct {
	productos map[uint]*model.Producto
	seq       uint
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[uint]*model.Producto)}
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	r.seq++
	p.ID = r.seq
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uint) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return p, nil
}

func (r *stubProductoRepo) List(_ context.Context, soloDisponibles bool) ([]model.Producto, error) {
	var out []model.Producto
	for _, p := range r.productos {
		if soloDisponibles && p.Status != model.ProductoDisponible {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductoRepo) ListByCategoria(_ context.Context, categoriaID uint) ([]model.Producto, error) {
	var out []model.Producto
	for _, p := range r.productos {
		if p.CategoriaID == categoriaID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) Delete(_ context.Context, id uint) error {
	delete(r.productos, id)
	return nil
}

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

// stubCategoriaRepo is an in-memory CategoriaRepository.
type stubCategoriaRepo struct {
	categorias map[uint]*model.Categoria
	seq        uint
}

func newStubCategoriaRepo() *stubCategoriaRepo {
	return &stubCategoriaRepo{categorias: make(map[uint]*model.Categoria)}
}

func (r *stubCategoriaRepo) Create(_ context.Context, c *model.Categoria) error {
	r.seq++
	c.ID = r.seq
	r.categorias[c.ID] = c
	return nil
}

func (r *stubCategoriaRepo) FindByID(_ context.Context, id uint) (*model.Categoria, error) {
	c, ok := r.categorias[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return c, nil
}

func (r *stubCategoriaRepo) List(_ context.Context, soloActivas bool) ([]model.Categoria, error) {
	var out []model.Categoria
	for _, c := range r.categorias {
		if soloActivas && !c.Activo {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCategoriaRepo) Update(_ context.Context, c *model.Categoria) error {
	r.categorias[c.ID] = c
	return nil
}

func (r *stubCategoriaRepo) Delete(_ context.Context, id uint) error {
	delete(r.categorias, id)
	return nil
}

var _ repository.CategoriaRepository = (*stubCategoriaRepo)(nil)

// stubCierreRepo captures shift closures.
type stubCierreRepo struct {
	cierres []model.CierreCaja
	seq     uint
}

func (r *stubCierreRepo) Create(_ context.Context, c *model.CierreCaja) error {
	r.seq++
	c.ID = r.seq
	if c.FechaCierre.IsZero() {
		c.FechaCierre = time.Now()
	}
	r.cierres = append(r.cierres, *c)
	return nil
}

func (r *stubCierreRepo) List(_ context.Context, limit int) ([]model.CierreCaja, error) {
	out := r.cierres
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubCierreRepo) ListByCajero(_ context.Context, cajeroID uint, limit int) ([]model.CierreCaja, error) {
	var out []model.CierreCaja
	for _, c := range r.cierres {
		if c.CajeroID == cajeroID && len(out) < limit {
			out = append(out, c)
		}
	}
	return out, nil
}

var _ repository.CierreRepository = (*stubCierreRepo)(nil)
