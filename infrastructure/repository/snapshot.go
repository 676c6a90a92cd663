// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

//go:generate mockgen -source=snapshot.go -destination=mocks/snapshot_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/salon-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/salon-manager-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type SnapshotRepository interface {
	LoadSnapshot(ctx context.Context) (*domain.Snapshot, error)
}

type snapshotRepository struct {
	conn postgres.Conn
}

func NewSnapshotRepository(conn postgres.Conn) SnapshotRepository {
	return &snapshotRepository{
		conn: conn,
	}
}

// LoadSnapshot lê todas as tabelas do painel em uma única transação somente leitura,
// de modo que o cálculo nunca misture estados diferentes do banco
func (r *snapshotRepository) LoadSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	snapshot := &domain.Snapshot{}

	err := r.conn.RunReadOnly(ctx, func(q postgres.Queryer) error {
		var err error

		if snapshot.Bookings, err = r.loadBookings(ctx, q); err != nil {
			return errors.Wrap(err, "erro ao carregar agendamentos")
		}
		if snapshot.Sales, err = r.loadSales(ctx, q); err != nil {
			return errors.Wrap(err, "erro ao carregar vendas")
		}
		if snapshot.Services, err = r.loadServices(ctx, q); err != nil {
			return errors.Wrap(err, "erro ao carregar serviços")
		}
		if snapshot.Providers, err = r.loadProviders(ctx, q); err != nil {
			return errors.Wrap(err, "erro ao carregar profissionais")
		}
		if snapshot.Campaigns, err = r.loadCampaigns(ctx, q); err != nil {
			return errors.Wrap(err, "erro ao carregar campanhas")
		}
		if snapshot.Customers, err = r.loadCustomers(ctx, q); err != nil {
			return errors.Wrap(err, "erro ao carregar clientes")
		}
		if snapshot.Partners, err = r.loadPartners(ctx, q); err != nil {
			return errors.Wrap(err, "erro ao carregar parceiros")
		}
		if snapshot.PaymentSettings, err = r.loadPaymentSettings(ctx, q); err != nil {
			return errors.Wrap(err, "erro ao carregar configurações de pagamento")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	snapshot.LoadedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"bookings":  len(snapshot.Bookings),
		"sales":     len(snapshot.Sales),
		"customers": len(snapshot.Customers),
	}).Debug("Snapshot do salão carregado")

	return snapshot, nil
}

func (r *snapshotRepository) query(ctx context.Context, q postgres.Queryer, builder squirrel.SelectBuilder) (*sql.Rows, error) {
	sqlQuery, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := q.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query")
	}

	return rows, nil
}

func (r *snapshotRepository) loadBookings(ctx context.Context, q postgres.Queryer) ([]domain.Booking, error) {
	rows, err := r.query(ctx, q, squirrel.
		Select(
			"b.id",
			"b.customer_id",
			"b.provider_id",
			"b.service_id",
			"to_char(b.date, 'YYYY-MM-DD')",
			"to_char(b.time, 'HH24:MI')",
			"b.status",
			"b.price_paid",
			"b.booked_price",
			"b.commission_rate_snapshot",
			"b.additional_services",
			"b.coupon_code",
			"b.discount_amount",
		).
		From("bookings b").
		OrderBy("b.created_at ASC", "b.id ASC"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var (
			booking            domain.Booking
			pricePaid          sql.NullFloat64
			bookedPrice        sql.NullFloat64
			commissionRate     sql.NullFloat64
			additionalServices []byte
			couponCode         sql.NullString
			discountAmount     sql.NullFloat64
		)

		err := rows.Scan(
			&booking.ID,
			&booking.CustomerID,
			&booking.ProviderID,
			&booking.ServiceID,
			&booking.Date,
			&booking.Time,
			&booking.Status,
			&pricePaid,
			&bookedPrice,
			&commissionRate,
			&additionalServices,
			&couponCode,
			&discountAmount,
		)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear agendamento")
		}

		booking.PricePaid = nullFloat(pricePaid)
		booking.BookedPrice = nullFloat(bookedPrice)
		booking.CommissionRateSnapshot = nullFloat(commissionRate)
		booking.DiscountAmount = nullFloat(discountAmount)
		if couponCode.Valid {
			booking.CouponCode = &couponCode.String
		}

		if len(additionalServices) > 0 {
			if err := json.Unmarshal(additionalServices, &booking.AdditionalServices); err != nil {
				// Um registro malformado não pode derrubar o painel inteiro
				logrus.WithError(err).WithField("booking_id", booking.ID).Warn("Serviços adicionais inválidos ignorados")
				booking.AdditionalServices = nil
			}
		}

		bookings = append(bookings, booking)
	}

	return bookings, rows.Err()
}

func (r *snapshotRepository) loadSales(ctx context.Context, q postgres.Queryer) ([]domain.Sale, error) {
	rows, err := r.query(ctx, q, squirrel.
		Select(
			"s.id",
			"s.customer_id",
			"to_char(s.date, 'YYYY-MM-DD')",
			"s.items",
			"s.total_amount",
			"s.payment_method",
		).
		From("sales s").
		OrderBy("s.created_at ASC", "s.id ASC"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sales := make([]domain.Sale, 0)
	for rows.Next() {
		var (
			sale          domain.Sale
			customerID    sql.NullString
			items         []byte
			paymentMethod sql.NullString
		)

		if err := rows.Scan(&sale.ID, &customerID, &sale.Date, &items, &sale.TotalAmount, &paymentMethod); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear venda")
		}

		sale.CustomerID = customerID.String
		sale.PaymentMethod = paymentMethod.String

		if len(items) > 0 {
			if err := json.Unmarshal(items, &sale.Items); err != nil {
				logrus.WithError(err).WithField("sale_id", sale.ID).Warn("Itens de venda inválidos ignorados")
				sale.Items = nil
			}
		}

		sales = append(sales, sale)
	}

	return sales, rows.Err()
}

func (r *snapshotRepository) loadServices(ctx context.Context, q postgres.Queryer) ([]domain.ServiceCatalogEntry, error) {
	rows, err := r.query(ctx, q, squirrel.
		Select("sv.id", "sv.name", "sv.price", "sv.duration_minutes", "COALESCE(sv.category, '')").
		From("services sv").
		OrderBy("sv.created_at ASC", "sv.id ASC"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := make([]domain.ServiceCatalogEntry, 0)
	for rows.Next() {
		var service domain.ServiceCatalogEntry
		if err := rows.Scan(&service.ID, &service.Name, &service.Price, &service.DurationMinutes, &service.Category); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear serviço")
		}
		services = append(services, service)
	}

	return services, rows.Err()
}

func (r *snapshotRepository) loadProviders(ctx context.Context, q postgres.Queryer) ([]domain.Provider, error) {
	rows, err := r.query(ctx, q, squirrel.
		Select("p.id", "p.name", "p.commission_rate", "COALESCE(to_char(p.birth_date, 'YYYY-MM-DD'), '')").
		From("providers p").
		OrderBy("p.created_at ASC", "p.id ASC"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	providers := make([]domain.Provider, 0)
	for rows.Next() {
		var provider domain.Provider
		if err := rows.Scan(&provider.ID, &provider.Name, &provider.CommissionRate, &provider.BirthDate); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear profissional")
		}
		providers = append(providers, provider)
	}

	return providers, rows.Err()
}

func (r *snapshotRepository) loadCampaigns(ctx context.Context, q postgres.Queryer) ([]domain.Campaign, error) {
	rows, err := r.query(ctx, q, squirrel.
		Select(
			"c.id",
			"COALESCE(c.partner_id, '')",
			"c.coupon_code",
			"c.discount_type",
			"c.discount_value",
			"c.use_count",
			"c.max_uses",
			"c.total_revenue",
		).
		From("campaigns c").
		OrderBy("c.created_at ASC", "c.id ASC"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	campaigns := make([]domain.Campaign, 0)
	for rows.Next() {
		var (
			campaign domain.Campaign
			maxUses  sql.NullInt64
		)

		err := rows.Scan(
			&campaign.ID,
			&campaign.PartnerID,
			&campaign.CouponCode,
			&campaign.DiscountType,
			&campaign.DiscountValue,
			&campaign.UseCount,
			&maxUses,
			&campaign.TotalRevenue,
		)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear campanha")
		}

		if maxUses.Valid {
			value := int(maxUses.Int64)
			campaign.MaxUses = &value
		}

		campaigns = append(campaigns, campaign)
	}

	return campaigns, rows.Err()
}

func (r *snapshotRepository) loadCustomers(ctx context.Context, q postgres.Queryer) ([]domain.Customer, error) {
	rows, err := r.query(ctx, q, squirrel.
		Select(
			"cu.id",
			"cu.name",
			"COALESCE(cu.acquisition_channel, '')",
			"COALESCE(to_char(cu.registration_date, 'YYYY-MM-DD'), '')",
			"COALESCE(to_char(cu.birth_date, 'YYYY-MM-DD'), '')",
			"cu.status",
			"COALESCE(cu.assigned_provider_id, '')",
		).
		From("customers cu").
		OrderBy("cu.created_at ASC", "cu.id ASC"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]domain.Customer, 0)
	for rows.Next() {
		var customer domain.Customer
		err := rows.Scan(
			&customer.ID,
			&customer.Name,
			&customer.AcquisitionChannel,
			&customer.RegistrationDate,
			&customer.BirthDate,
			&customer.Status,
			&customer.AssignedProviderID,
		)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear cliente")
		}
		customers = append(customers, customer)
	}

	return customers, rows.Err()
}

func (r *snapshotRepository) loadPartners(ctx context.Context, q postgres.Queryer) ([]domain.Partner, error) {
	rows, err := r.query(ctx, q, squirrel.
		Select("pa.id", "pa.name", "COALESCE(pa.category, '')").
		From("partners pa").
		OrderBy("pa.created_at ASC", "pa.id ASC"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	partners := make([]domain.Partner, 0)
	for rows.Next() {
		var partner domain.Partner
		if err := rows.Scan(&partner.ID, &partner.Name, &partner.Category); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear parceiro")
		}
		partners = append(partners, partner)
	}

	return partners, rows.Err()
}

func (r *snapshotRepository) loadPaymentSettings(ctx context.Context, q postgres.Queryer) (*domain.PaymentSettings, error) {
	sqlQuery, args, err := squirrel.
		Select("COALESCE(ps.pix_key, '')", "ps.accepted_methods", "COALESCE(ps.card_fee_percent, 0)").
		From("payment_settings ps").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	settings := &domain.PaymentSettings{}
	err = q.QueryRowContext(ctx, sqlQuery, args...).Scan(
		&settings.PixKey,
		pq.Array(&settings.AcceptedMethods),
		&settings.CardFeePercent,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao escanear configurações de pagamento")
	}

	return settings, nil
}

func nullFloat(value sql.NullFloat64) *float64 {
	if !value.Valid {
		return nil
	}
	v := value.Float64
	return &v
}
