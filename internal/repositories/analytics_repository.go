package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DashboardStats aggregates the headline numbers for the dashboard view.
type DashboardStats struct {
	TotalOrders   int64   `json:"totalOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalProducts int64   `json:"totalProducts"`
	AverageRating float64 `json:"averageRating"`
}

type SalesPoint struct {
	Date    time.Time `json:"date"`
	Revenue float64   `json:"revenue"`
	Orders  int64     `json:"orders"`
}

type TopProduct struct {
	ProductID   uuid.UUID `json:"productId"`
	ProductName string    `json:"productName"`
	TotalSold   int64     `json:"totalSold"`
	Revenue     float64   `json:"revenue"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// AnalyticsRepository runs the GROUP BY/SUM aggregates behind the
// analytics endpoints. All queries accept an optional shop scope.
type AnalyticsRepository interface {
	DashboardStats(ctx context.Context, shopID *uuid.UUID) (*DashboardStats, error)
	SalesOverTime(ctx context.Context, shopID *uuid.UUID, since time.Time) ([]SalesPoint, error)
	TopProducts(ctx context.Context, shopID *uuid.UUID, limit int) ([]TopProduct, error)
	OrderStatusBreakdown(ctx context.Context, shopID *uuid.UUID) ([]StatusCount, error)
}

type analyticsRepo struct {
	db DB
}

func NewAnalyticsRepository(db DB) AnalyticsRepository {
	return &analyticsRepo{db: db}
}

func (r *analyticsRepo) DashboardStats(ctx context.Context, shopID *uuid.UUID) (*DashboardStats, error) {
	var stats DashboardStats

	orderQuery := `SELECT COUNT(id), COALESCE(SUM(total), 0) FROM orders WHERE status <> 'cancelled'`
	productQuery := `SELECT COUNT(id) FROM products`
	ratingQuery := `SELECT COALESCE(AVG(rating), 0) FROM reviews`

	if shopID != nil {
		if err := r.db.QueryRow(ctx, orderQuery+` AND shop_id = $1`, *shopID).
			Scan(&stats.TotalOrders, &stats.TotalRevenue); err != nil {
			return nil, err
		}
		if err := r.db.QueryRow(ctx, productQuery+` WHERE shop_id = $1`, *shopID).
			Scan(&stats.TotalProducts); err != nil {
			return nil, err
		}
		if err := r.db.QueryRow(ctx,
			ratingQuery+` WHERE product_id IN (SELECT id FROM products WHERE shop_id = $1)`, *shopID).
			Scan(&stats.AverageRating); err != nil {
			return nil, err
		}
		return &stats, nil
	}

	if err := r.db.QueryRow(ctx, orderQuery).Scan(&stats.TotalOrders, &stats.TotalRevenue); err != nil {
		return nil, err
	}
	if err := r.db.QueryRow(ctx, productQuery).Scan(&stats.TotalProducts); err != nil {
		return nil, err
	}
	if err := r.db.QueryRow(ctx, ratingQuery).Scan(&stats.AverageRating); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *analyticsRepo) SalesOverTime(ctx context.Context, shopID *uuid.UUID, since time.Time) ([]SalesPoint, error) {
	query := `
		SELECT DATE(created_at) AS date, COALESCE(SUM(total), 0) AS revenue, COUNT(id) AS orders
		FROM orders
		WHERE created_at >= $1 AND status <> 'cancelled'
	`
	args := []interface{}{since}
	if shopID != nil {
		query += ` AND shop_id = $2`
		args = append(args, *shopID)
	}
	query += ` GROUP BY DATE(created_at) ORDER BY date`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []SalesPoint
	for rows.Next() {
		var p SalesPoint
		if err := rows.Scan(&p.Date, &p.Revenue, &p.Orders); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

func (r *analyticsRepo) TopProducts(ctx context.Context, shopID *uuid.UUID, limit int) ([]TopProduct, error) {
	query := `
		SELECT p.id, p.name, COALESCE(SUM(oi.quantity), 0) AS total_sold, COALESCE(SUM(oi.total_price), 0) AS revenue
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		JOIN orders o ON o.id = oi.order_id
		WHERE o.status <> 'cancelled'
	`
	args := []interface{}{}
	if shopID != nil {
		query += ` AND p.shop_id = $1`
		args = append(args, *shopID)
	}
	query += ` GROUP BY p.id, p.name ORDER BY total_sold DESC`
	if shopID != nil {
		query += ` LIMIT $2`
	} else {
		query += ` LIMIT $1`
	}
	args = append(args, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []TopProduct
	for rows.Next() {
		var tp TopProduct
		if err := rows.Scan(&tp.ProductID, &tp.ProductName, &tp.TotalSold, &tp.Revenue); err != nil {
			return nil, err
		}
		products = append(products, tp)
	}
	return products, rows.Err()
}

func (r *analyticsRepo) OrderStatusBreakdown(ctx context.Context, shopID *uuid.UUID) ([]StatusCount, error) {
	query := `SELECT status, COUNT(id) FROM orders`
	args := []interface{}{}
	if shopID != nil {
		query += ` WHERE shop_id = $1`
		args = append(args, *shopID)
	}
	query += ` GROUP BY status`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []StatusCount
	for rows.Next() {
		var sc StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, sc)
	}
	return counts, rows.Err()
}
