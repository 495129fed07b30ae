// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"context"
	"database/sql"
	"time"

	"laundromat/internal/core/domain/model/kernel"
	"laundromat/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderItemView is one garment line in the read model. Name is empty for
// pressing lines.
type OrderItemView struct {
	ID       kernel.UUID
	Name     string
	Quantity int
	Total    int
}

// OrderVersionView is one superseded entry of an order's edit history,
// annotated with the user who produced it.
type OrderVersionView struct {
	ID            kernel.UUID
	Status        string
	PaymentMethod string
	PaymentStatus string
	AmountPaid    int
	CreatedBy     kernel.UUID
	CreatedAt     time.Time
}

// OrderView is the read model every order query returns: the chain's main
// version enriched with its concrete items and, where requested, the edit
// history. Raw order-item link rows never leak out of this package.
type OrderView struct {
	ID            kernel.UUID
	OriginalID    kernel.UUID
	OrderType     string
	CustomerID    kernel.UUID
	Status        string
	PaymentMethod string
	PaymentStatus string
	Total         int
	AmountPaid    int
	PickupNumber  int
	StorageID     *kernel.UUID
	PressingItem  *OrderItemView
	CleaningItems []OrderItemView
	History       []OrderVersionView
	CreatedBy     kernel.UUID
	CreatedAt     time.Time
}

// orderColumns is the scan list shared by every order query.
const orderColumns = `id, order_type, customer_id, payment_method, payment_status, status,
	total, amount_paid, pickup_number, storage_id, main_order_id, is_main_order, created_by, created_at`

// orderRow mirrors one scanned orders row before projection.
type orderRow struct {
	id            uuid.UUID
	orderType     int
	customerID    uuid.UUID
	paymentMethod int
	paymentStatus int
	status        int
	total         int
	amountPaid    int
	pickupNumber  int
	storageID     uuid.NullUUID
	mainOrderID   uuid.NullUUID
	isMainOrder   bool
	createdBy     uuid.UUID
	createdAt     time.Time
}

func (r orderRow) originalID() uuid.UUID {
	if r.mainOrderID.Valid {
		return r.mainOrderID.UUID
	}
	return r.id
}

func scanOrderRows(rows *sql.Rows) ([]orderRow, error) {
	result := make([]orderRow, 0)

	for rows.Next() {
		var row orderRow
		if err := rows.Scan(
			&row.id,
			&row.orderType,
			&row.customerID,
			&row.paymentMethod,
			&row.paymentStatus,
			&row.status,
			&row.total,
			&row.amountPaid,
			&row.pickupNumber,
			&row.storageID,
			&row.mainOrderID,
			&row.isMainOrder,
			&row.createdBy,
			&row.createdAt,
		); err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

func queryOrderRows(ctx context.Context, db *gorm.DB, query string, args ...any) ([]orderRow, error) {
	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}

func toOrderView(row orderRow) (OrderView, error) {
	id, err := kernel.UUIDFromBytes(row.id[:])
	if err != nil {
		return OrderView{}, err
	}

	customerID, err := kernel.UUIDFromBytes(row.customerID[:])
	if err != nil {
		return OrderView{}, err
	}

	createdBy, err := kernel.UUIDFromBytes(row.createdBy[:])
	if err != nil {
		return OrderView{}, err
	}

	original := row.originalID()
	originalID, err := kernel.UUIDFromBytes(original[:])
	if err != nil {
		return OrderView{}, err
	}

	var storageID *kernel.UUID
	if row.storageID.Valid {
		sID, storageErr := kernel.UUIDFromBytes(row.storageID.UUID[:])
		if storageErr != nil {
			return OrderView{}, storageErr
		}
		storageID = &sID
	}

	return OrderView{
		ID:            id,
		OriginalID:    originalID,
		OrderType:     order.Type(row.orderType).String(),
		CustomerID:    customerID,
		Status:        order.Status(row.status).String(),
		PaymentMethod: order.PaymentMethod(row.paymentMethod).String(),
		PaymentStatus: order.PaymentStatus(row.paymentStatus).String(),
		Total:         row.total,
		AmountPaid:    row.amountPaid,
		PickupNumber:  row.pickupNumber,
		StorageID:     storageID,
		CreatedBy:     createdBy,
		CreatedAt:     row.createdAt,
	}, nil
}

// buildOrderViews projects the scanned main-version rows, then enriches them
// with items (at most two batched item queries regardless of the batch size)
// and, when withHistory is set, the superseded versions of each chain.
func buildOrderViews(ctx context.Context, db *gorm.DB, rows []orderRow, withHistory bool) ([]OrderView, error) {
	views := make([]OrderView, 0, len(rows))
	for _, row := range rows {
		view, err := toOrderView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	if len(views) == 0 {
		return views, nil
	}

	if err := attachItems(ctx, db, views); err != nil {
		return nil, err
	}

	if withHistory {
		if err := attachHistory(ctx, db, views); err != nil {
			return nil, err
		}
	}

	return views, nil
}

// attachItems resolves each view's item links and projects the concrete item
// rows: a single pressing line, or the cleaning lines in stable order.
func attachItems(ctx context.Context, db *gorm.DB, views []OrderView) error {
	orderIDs := make([]uuid.UUID, 0, len(views))
	for _, view := range views {
		orderIDs = append(orderIDs, view.ID.Bytes())
	}

	type linkRow struct {
		orderID  uuid.UUID
		itemType int
		itemID   uuid.UUID
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT order_id, item_type, item_id
		FROM order_items
		WHERE order_id IN ?
		ORDER BY item_id
	`, orderIDs).Rows()
	if err != nil {
		return err
	}

	links := make([]linkRow, 0)
	for rows.Next() {
		var link linkRow
		if err = rows.Scan(&link.orderID, &link.itemType, &link.itemID); err != nil {
			rows.Close()
			return err
		}
		links = append(links, link)
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		return err
	}
	rows.Close()

	var pressingIDs, cleaningIDs []uuid.UUID
	for _, link := range links {
		switch order.Type(link.itemType) {
		case order.Pressing:
			pressingIDs = append(pressingIDs, link.itemID)
		case order.Cleaning:
			cleaningIDs = append(cleaningIDs, link.itemID)
		}
	}

	pressingItems, err := fetchItems(ctx, db, "SELECT id, '' AS name, quantity, total FROM pressing_items WHERE id IN ?", pressingIDs)
	if err != nil {
		return err
	}

	cleaningItems, err := fetchItems(ctx, db, "SELECT id, name, quantity, total FROM cleaning_items WHERE id IN ?", cleaningIDs)
	if err != nil {
		return err
	}

	byOrder := make(map[uuid.UUID][]linkRow, len(views))
	for _, link := range links {
		byOrder[link.orderID] = append(byOrder[link.orderID], link)
	}

	for i := range views {
		for _, link := range byOrder[views[i].ID.Bytes()] {
			switch order.Type(link.itemType) {
			case order.Pressing:
				if item, ok := pressingItems[link.itemID]; ok {
					views[i].PressingItem = &item
				}
			case order.Cleaning:
				if item, ok := cleaningItems[link.itemID]; ok {
					views[i].CleaningItems = append(views[i].CleaningItems, item)
				}
			}
		}
	}

	return nil
}

func fetchItems(ctx context.Context, db *gorm.DB, query string, ids []uuid.UUID) (map[uuid.UUID]OrderItemView, error) {
	items := make(map[uuid.UUID]OrderItemView, len(ids))
	if len(ids) == 0 {
		return items, nil
	}

	rows, err := db.WithContext(ctx).Raw(query, ids).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			rawID uuid.UUID
			item  OrderItemView
		)
		if err = rows.Scan(&rawID, &item.Name, &item.Quantity, &item.Total); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(rawID[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = id
		items[rawID] = item
	}

	return items, rows.Err()
}

// attachHistory loads every superseded version of the views' chains, newest
// first, and groups them under the owning view.
func attachHistory(ctx context.Context, db *gorm.DB, views []OrderView) error {
	originalIDs := make([]uuid.UUID, 0, len(views))
	for _, view := range views {
		originalIDs = append(originalIDs, view.OriginalID.Bytes())
	}

	rows, err := queryOrderRows(ctx, db, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE (id IN ? OR main_order_id IN ?) AND is_main_order = false
		ORDER BY created_at DESC
	`, originalIDs, originalIDs)
	if err != nil {
		return err
	}

	byOriginal := make(map[uuid.UUID][]OrderVersionView, len(views))
	for _, row := range rows {
		id, idErr := kernel.UUIDFromBytes(row.id[:])
		if idErr != nil {
			return idErr
		}

		createdBy, byErr := kernel.UUIDFromBytes(row.createdBy[:])
		if byErr != nil {
			return byErr
		}

		original := row.originalID()
		byOriginal[original] = append(byOriginal[original], OrderVersionView{
			ID:            id,
			Status:        order.Status(row.status).String(),
			PaymentMethod: order.PaymentMethod(row.paymentMethod).String(),
			PaymentStatus: order.PaymentStatus(row.paymentStatus).String(),
			AmountPaid:    row.amountPaid,
			CreatedBy:     createdBy,
			CreatedAt:     row.createdAt,
		})
	}

	for i := range views {
		views[i].History = byOriginal[views[i].OriginalID.Bytes()]
	}

	return nil
}
