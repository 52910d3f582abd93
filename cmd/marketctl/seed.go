package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	apartmentrepo "github.com/light-bringer/aptmart-service/internal/app/apartment/repo"
	"github.com/light-bringer/aptmart-service/internal/app/apartment/usecases/create_apartment"
	catalogdomain "github.com/light-bringer/aptmart-service/internal/app/catalog/domain"
	catalogrepo "github.com/light-bringer/aptmart-service/internal/app/catalog/repo"
	"github.com/light-bringer/aptmart-service/internal/app/catalog/usecases/add_listing"
	outboxrepo "github.com/light-bringer/aptmart-service/internal/app/outbox/repo"
	sellerrepo "github.com/light-bringer/aptmart-service/internal/app/seller/repo"
	"github.com/light-bringer/aptmart-service/internal/app/seller/usecases/choose_seller_type"
	"github.com/light-bringer/aptmart-service/internal/app/seller/usecases/register_seller"
	shoprepo "github.com/light-bringer/aptmart-service/internal/app/shop/repo"
	"github.com/light-bringer/aptmart-service/internal/app/shop/usecases/toggle_shop_status"
	"github.com/light-bringer/aptmart-service/internal/pkg/money"
)

type seedApartment struct {
	Key        string
	Name       string
	Address    string
	TotalFlats int64
}

type seedListing struct {
	Name  string
	Price string
	Image string
}

type seedShop struct {
	Phone        string
	ProviderName string
	Name         string
	Category     string
	Type         string
	Open         bool
	Apartments   []string
	Listings     []seedListing
}

var demoApartments = []seedApartment{
	{Key: "skyline", Name: "Skyline Residences", Address: "Block A, Sector 12, Mumbai", TotalFlats: 120},
	{Key: "green-valley", Name: "Green Valley Apartments", Address: "Plot 45, HSR Layout, Bangalore", TotalFlats: 80},
	{Key: "palm", Name: "Palm Heights", Address: "Phase 2, Gurgaon", TotalFlats: 150},
}

var demoShops = []seedShop{
	{
		Phone: "+919876543210", ProviderName: "Fresh Mart Traders", Name: "Fresh Mart", Category: "Grocery",
		Type: "products", Open: true, Apartments: []string{"skyline", "green-valley"},
		Listings: []seedListing{
			{Name: "Fresh Milk (1L)", Price: "60", Image: "/vintage-milk-bottle.png"},
			{Name: "Bread (White)", Price: "40", Image: "/rustic-bread-loaf.png"},
			{Name: "Eggs (12 pcs)", Price: "84", Image: "/eggs-carton.png"},
			{Name: "Rice (5kg)", Price: "350", Image: "/rice-bag.png"},
		},
	},
	{
		Phone: "+919876543211", ProviderName: "HealthPlus", Name: "HealthPlus Pharmacy", Category: "Pharmacy",
		Type: "products", Open: true, Apartments: []string{"skyline"},
		Listings: []seedListing{
			{Name: "Paracetamol (Strip)", Price: "15", Image: "/medicine-strip.jpg"},
			{Name: "Hand Sanitizer", Price: "80", Image: "/hand-sanitizer-bottle.jpg"},
		},
	},
	{
		Phone: "+919876543212", ProviderName: "Baker's Delight", Name: "Baker's Delight", Category: "Bakery",
		Type: "products", Open: false, Apartments: []string{"skyline", "palm"},
		Listings: []seedListing{
			{Name: "Chocolate Cake (500g)", Price: "450"},
		},
	},
	{
		Phone: "+919876543215", ProviderName: "Sparkle Car Care", Name: "Sparkle Car Wash", Category: "Car",
		Type: "services", Open: true, Apartments: []string{"green-valley", "palm"},
		Listings: []seedListing{
			{Name: "Exterior Foam Wash", Price: "499"},
			{Name: "Interior Vacuum", Price: "299"},
		},
	},
}

func newSeedCmd(e *env) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load demo apartments, sellers, shops and listings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return seed(cmd.Context(), e, password)
		},
	}
	cmd.Flags().StringVar(&password, "seller-password", "aptmart123", "password for every demo seller")
	return cmd
}

func seed(ctx context.Context, e *env, password string) error {
	comm := e.committer()
	outbox := outboxrepo.NewOutboxRepo(e.client)
	sellers := sellerrepo.NewSellerRepo(e.client)
	shops := shoprepo.NewShopRepo(e.client)
	listings := catalogrepo.NewListingRepo(e.client)

	createApartment := create_apartment.NewInteractor(apartmentrepo.NewApartmentRepo(e.client), outbox, comm, e.clock)
	registerSeller := register_seller.NewInteractor(sellers, shops, outbox, comm, e.clock)
	chooseType := choose_seller_type.NewInteractor(sellers, shops, outbox, comm, e.clock)
	toggleShop := toggle_shop_status.NewInteractor(shops, outbox, comm, e.clock)
	addListing := add_listing.NewInteractor(listings, catalogrepo.NewShopResolver(sellers, shops), outbox, comm, e.clock)

	apartmentIDs := make(map[string]string, len(demoApartments))
	for _, a := range demoApartments {
		apt, err := createApartment.Execute(ctx, &create_apartment.Request{Name: a.Name, Address: a.Address, TotalFlats: a.TotalFlats})
		if err != nil {
			return fmt.Errorf("apartment %s: %w", a.Name, err)
		}
		apartmentIDs[a.Key] = apt.ID()
		e.log.WithField("apartment_id", apt.ID()).Infof("created apartment %s", a.Name)
	}

	for _, s := range demoShops {
		ids := make([]string, 0, len(s.Apartments))
		for _, key := range s.Apartments {
			ids = append(ids, apartmentIDs[key])
		}

		res, err := registerSeller.Execute(ctx, &register_seller.Request{
			Phone:        s.Phone,
			Password:     password,
			ProviderName: s.ProviderName,
			ApartmentIDs: ids,
			Shop: register_seller.ShopRequest{
				Name:     s.Name,
				Category: s.Category,
			},
		})
		if err != nil {
			return fmt.Errorf("seller %s: %w", s.Phone, err)
		}
		sellerID := res.Seller.ID()

		if _, err := chooseType.Execute(ctx, &choose_seller_type.Request{SellerID: sellerID, Type: s.Type}); err != nil {
			return fmt.Errorf("seller %s type: %w", s.Phone, err)
		}
		for _, l := range s.Listings {
			price, err := money.Parse(l.Price)
			if err != nil {
				return fmt.Errorf("listing %s: %w", l.Name, err)
			}
			if _, err := addListing.Execute(ctx, &add_listing.Request{
				SellerID: sellerID,
				Kind:     s.Type,
				Fields:   catalogdomain.Fields{Name: l.Name, Price: price, ImageURL: l.Image, Available: true},
			}); err != nil {
				return fmt.Errorf("listing %s: %w", l.Name, err)
			}
		}
		if s.Open {
			if _, err := toggleShop.Execute(ctx, res.Shop.ID()); err != nil {
				return fmt.Errorf("activate %s: %w", s.Name, err)
			}
		}

		e.log.WithFields(logrus.Fields{
			"seller_id": sellerID,
			"shop_id":   res.Shop.ID(),
			"listings":  len(s.Listings),
			"active":    s.Open,
		}).Infof("created shop %s", s.Name)
	}
	return nil
}
