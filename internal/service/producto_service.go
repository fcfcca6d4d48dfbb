package service

import (
	"context"
	"errors"

	"sallepos/internal/dto"
	"sallepos/internal/model"
	"sallepos/internal/repository"
)

var (
	ErrProductoNoEncontrado  = errors.New("Producto no encontrado")
	ErrCategoriaNoEncontrada = errors.New("Categoría no encontrada")
)

// ─── Productos ───────────────────────────────────────────────────────────────

type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	Obtener(ctx context.Context, id uint) (*dto.ProductoResponse, error)
	// Listar returns the catalog; cashiers only see available products.
	Listar(ctx context.Context, soloDisponibles bool) ([]dto.ProductoResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type productoService struct {
	repo       repository.ProductoRepository
	categorias repository.CategoriaRepository
}

func NewProductoService(repo repository.ProductoRepository, categorias repository.CategoriaRepository) ProductoService {
	return &productoService{repo: repo, categorias: categorias}
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if _, err := s.categorias.FindByID(ctx, req.CategoriaID); err != nil {
		return nil, ErrCategoriaNoEncontrada
	}
	p := &model.Producto{
		CategoriaID:  req.CategoriaID,
		Nombre:       req.Nombre,
		Costo:        req.Costo.Round(2),
		Precio:       req.Precio.Round(2),
		PrecioPuntos: req.PrecioPuntos,
		Descripcion:  req.Descripcion,
		Img:          req.Img,
		Status:       model.ProductoDisponible,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return productoToResponse(p), nil
}

func (s *productoService) Obtener(ctx context.Context, id uint) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrProductoNoEncontrado
	}
	return productoToResponse(p), nil
}

func (s *productoService) Listar(ctx context.Context, soloDisponibles bool) ([]dto.ProductoResponse, error) {
	productos, err := s.repo.List(ctx, soloDisponibles)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProductoResponse, len(productos))
	for i := range productos {
		resp[i] = *productoToResponse(&productos[i])
	}
	return resp, nil
}

func (s *productoService) Actualizar(ctx context.Context, id uint, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrProductoNoEncontrado
	}
	if req.CategoriaID != nil {
		if _, err := s.categorias.FindByID(ctx, *req.CategoriaID); err != nil {
			return nil, ErrCategoriaNoEncontrada
		}
		p.CategoriaID = *req.CategoriaID
	}
	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Costo != nil {
		p.Costo = req.Costo.Round(2)
	}
	if req.Precio != nil {
		p.Precio = req.Precio.Round(2)
	}
	if req.PrecioPuntos != nil {
		p.PrecioPuntos = *req.PrecioPuntos
	}
	if req.Descripcion != nil {
		p.Descripcion = req.Descripcion
	}
	if req.Img != nil {
		p.Img = req.Img
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return productoToResponse(p), nil
}

func (s *productoService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrProductoNoEncontrado
	}
	return s.repo.Delete(ctx, id)
}

func productoToResponse(p *model.Producto) *dto.ProductoResponse {
	resp := &dto.ProductoResponse{
		ID:           p.ID,
		CategoriaID:  p.CategoriaID,
		Nombre:       p.Nombre,
		Costo:        p.Costo,
		Precio:       p.Precio,
		PrecioPuntos: p.PrecioPuntos,
		Descripcion:  p.Descripcion,
		Img:          p.Img,
		Status:       p.Status,
	}
	if p.Categoria != nil {
		resp.Categoria = p.Categoria.Nombre
	}
	return resp
}

// ─── Categorías ──────────────────────────────────────────────────────────────

type CategoriaService interface {
	Crear(ctx context.Context, req dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error)
	Listar(ctx context.Context, soloActivas bool) ([]dto.CategoriaResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarCategoriaRequest) (*dto.CategoriaResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type categoriaService struct {
	repo      repository.CategoriaRepository
	productos repository.ProductoRepository
}

func NewCategoriaService(repo repository.CategoriaRepository, productos repository.ProductoRepository) CategoriaService {
	return &categoriaService{repo: repo, productos: productos}
}

func (s *categoriaService) Crear(ctx context.Context, req dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error) {
	c := &model.Categoria{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Orden:       req.Orden,
		Activo:      true,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return categoriaToResponse(c), nil
}

func (s *categoriaService) Listar(ctx context.Context, soloActivas bool) ([]dto.CategoriaResponse, error) {
	categorias, err := s.repo.List(ctx, soloActivas)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CategoriaResponse, len(categorias))
	for i := range categorias {
		resp[i] = *categoriaToResponse(&categorias[i])
	}
	return resp, nil
}

func (s *categoriaService) Actualizar(ctx context.Context, id uint, req dto.ActualizarCategoriaRequest) (*dto.CategoriaResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrCategoriaNoEncontrada
	}
	if req.Nombre != nil {
		c.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		c.Descripcion = req.Descripcion
	}
	if req.Orden != nil {
		c.Orden = *req.Orden
	}
	if req.Activo != nil {
		c.Activo = *req.Activo
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return categoriaToResponse(c), nil
}

func (s *categoriaService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrCategoriaNoEncontrada
	}
	// Categories with products still assigned cannot disappear from the menu.
	productos, err := s.productos.ListByCategoria(ctx, id)
	if err != nil {
		return err
	}
	if len(productos) > 0 {
		return errors.New("La categoría tiene productos asignados")
	}
	return s.repo.Delete(ctx, id)
}

func categoriaToResponse(c *model.Categoria) *dto.CategoriaResponse {
	return &dto.CategoriaResponse{
		ID:          c.ID,
		Nombre:      c.Nombre,
		Descripcion: c.Descripcion,
		Orden:       c.Orden,
		Activo:      c.Activo,
	}
}
