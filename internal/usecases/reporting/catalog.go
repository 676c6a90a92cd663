package reporting

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/salon-manager-api/internal/domain"
)

// Catalog indexa as tabelas de apoio do snapshot preservando a ordem de inserção,
// usada como critério de desempate nos rankings
type Catalog struct {
	services          map[string]*domain.ServiceCatalogEntry
	providers         map[string]*domain.Provider
	campaigns         map[string]*domain.Campaign
	campaignsByCoupon map[string]*domain.Campaign
	customers         map[string]*domain.Customer
	partners          map[string]*domain.Partner

	serviceOrder  []string
	providerOrder []string
	campaignOrder []string
	customerOrder []string
	partnerOrder  []string
}

// NewCatalog monta os índices. Em ids duplicados prevalece o primeiro registro.
func NewCatalog(snapshot *domain.Snapshot) *Catalog {
	c := &Catalog{
		services:          make(map[string]*domain.ServiceCatalogEntry),
		providers:         make(map[string]*domain.Provider),
		campaigns:         make(map[string]*domain.Campaign),
		campaignsByCoupon: make(map[string]*domain.Campaign),
		customers:         make(map[string]*domain.Customer),
		partners:          make(map[string]*domain.Partner),
	}

	if snapshot == nil {
		return c
	}

	for i := range snapshot.Services {
		service := &snapshot.Services[i]
		if _, exists := c.services[service.ID]; exists {
			continue
		}
		c.services[service.ID] = service
		c.serviceOrder = append(c.serviceOrder, service.ID)
	}

	for i := range snapshot.Providers {
		provider := &snapshot.Providers[i]
		if _, exists := c.providers[provider.ID]; exists {
			continue
		}
		c.providers[provider.ID] = provider
		c.providerOrder = append(c.providerOrder, provider.ID)
	}

	for i := range snapshot.Campaigns {
		campaign := &snapshot.Campaigns[i]
		if _, exists := c.campaigns[campaign.ID]; exists {
			continue
		}
		c.campaigns[campaign.ID] = campaign
		c.campaignOrder = append(c.campaignOrder, campaign.ID)

		if campaign.CouponCode == "" {
			continue
		}
		if _, exists := c.campaignsByCoupon[campaign.CouponCode]; exists {
			logrus.WithFields(logrus.Fields{
				"campaign_id": campaign.ID,
				"coupon_code": campaign.CouponCode,
			}).Warn("catalogo: cupom repetido em mais de uma campanha, mantendo a primeira")
			continue
		}
		c.campaignsByCoupon[campaign.CouponCode] = campaign
	}

	for i := range snapshot.Customers {
		customer := &snapshot.Customers[i]
		if _, exists := c.customers[customer.ID]; exists {
			continue
		}
		c.customers[customer.ID] = customer
		c.customerOrder = append(c.customerOrder, customer.ID)
	}

	for i := range snapshot.Partners {
		partner := &snapshot.Partners[i]
		if _, exists := c.partners[partner.ID]; exists {
			continue
		}
		c.partners[partner.ID] = partner
		c.partnerOrder = append(c.partnerOrder, partner.ID)
	}

	return c
}

func (c *Catalog) Service(id string) (*domain.ServiceCatalogEntry, bool) {
	service, ok := c.services[id]
	return service, ok
}

func (c *Catalog) Provider(id string) (*domain.Provider, bool) {
	provider, ok := c.providers[id]
	return provider, ok
}

func (c *Catalog) Campaign(id string) (*domain.Campaign, bool) {
	campaign, ok := c.campaigns[id]
	return campaign, ok
}

// CampaignByCoupon resolve a campanha dona de um código de cupom
func (c *Catalog) CampaignByCoupon(code string) (*domain.Campaign, bool) {
	campaign, ok := c.campaignsByCoupon[code]
	return campaign, ok
}

func (c *Catalog) Customer(id string) (*domain.Customer, bool) {
	customer, ok := c.customers[id]
	return customer, ok
}

func (c *Catalog) Partner(id string) (*domain.Partner, bool) {
	partner, ok := c.partners[id]
	return partner, ok
}

// ServiceName retorna o nome do serviço ou vazio quando a referência não existe
func (c *Catalog) ServiceName(id string) string {
	if service, ok := c.services[id]; ok {
		return service.Name
	}
	return ""
}

func (c *Catalog) ProviderName(id string) string {
	if provider, ok := c.providers[id]; ok {
		return provider.Name
	}
	return ""
}

func (c *Catalog) CustomerName(id string) string {
	if customer, ok := c.customers[id]; ok {
		return customer.Name
	}
	return ""
}

func (c *Catalog) PartnerName(id string) string {
	if partner, ok := c.partners[id]; ok {
		return partner.Name
	}
	return ""
}

// ServiceDuration retorna a duração em minutos do serviço, 0 se desconhecido
func (c *Catalog) ServiceDuration(id string) int {
	if service, ok := c.services[id]; ok {
		return service.DurationMinutes
	}
	return 0
}

// PartnerCoupons retorna o conjunto de cupons das campanhas de um parceiro
func (c *Catalog) PartnerCoupons(partnerID string) map[string]struct{} {
	coupons := make(map[string]struct{})
	for _, id := range c.campaignOrder {
		campaign := c.campaigns[id]
		if campaign.PartnerID == partnerID && campaign.CouponCode != "" {
			coupons[campaign.CouponCode] = struct{}{}
		}
	}
	return coupons
}

func (c *Catalog) ServiceOrder() []string  { return c.serviceOrder }
func (c *Catalog) ProviderOrder() []string { return c.providerOrder }
func (c *Catalog) CampaignOrder() []string { return c.campaignOrder }
func (c *Catalog) CustomerOrder() []string { return c.customerOrder }
func (c *Catalog) PartnerOrder() []string  { return c.partnerOrder }
