package cmd

import (
	"context"

	httpin "cargo/internal/adapters/in/http"
	"cargo/internal/adapters/out/auth"
	"cargo/internal/adapters/out/postgres"
	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/application/usecases/queries"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	hasher     auth.BcryptPasswordHasher
	signer     auth.JwtTokenSigner
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		hasher:     auth.NewBcryptPasswordHasher(),
		signer:     auth.NewJwtTokenSigner([]byte(config.JWTSecret), config.TokenTTL),
	}
}

func (c *CompositionRoot) TokenSigner() auth.JwtTokenSigner {
	return c.signer
}

func (c *CompositionRoot) CreateRegisterAccountCommandHandler() commands.RegisterAccountCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterAccountCommandHandler(f, c.hasher, services.NewCabinetAllocator())
}

func (c *CompositionRoot) CreateTopUpBalanceCommandHandler() commands.TopUpBalanceCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTopUpBalanceCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderEntryUoWFactory = FuncOrderEntryUoWFactory(func() commands.OrderEntryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, services.NewTariffCalculator())
}

func (c *CompositionRoot) CreatePayOrderCommandHandler() commands.PayOrderCommandHandler {
	var f commands.SettlementUoWFactory = FuncSettlementUoWFactory(func() commands.SettlementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPayOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeclareOrderCommandHandler() commands.DeclareOrderCommandHandler {
	return commands.NewDeclareOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAdvanceDepartedOrdersCommandHandler() commands.AdvanceDepartedOrdersCommandHandler {
	return commands.NewAdvanceDepartedOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateCountryCommandHandler() commands.CreateCountryCommandHandler {
	return commands.NewCreateCountryCommandHandler(c.countryUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCountryCommandHandler() commands.DeleteCountryCommandHandler {
	return commands.NewDeleteCountryCommandHandler(c.countryUoWFactory())
}

func (c *CompositionRoot) CreateCreateFlightCommandHandler() commands.CreateFlightCommandHandler {
	return commands.NewCreateFlightCommandHandler(c.flightUoWFactory())
}

func (c *CompositionRoot) CreateDeleteFlightCommandHandler() commands.DeleteFlightCommandHandler {
	return commands.NewDeleteFlightCommandHandler(c.flightUoWFactory())
}

func (c *CompositionRoot) CreateCreateShopCommandHandler() commands.CreateShopCommandHandler {
	return commands.NewCreateShopCommandHandler(c.shopUoWFactory())
}

func (c *CompositionRoot) CreateDeleteShopCommandHandler() commands.DeleteShopCommandHandler {
	return commands.NewDeleteShopCommandHandler(c.shopUoWFactory())
}

func (c *CompositionRoot) CreateLoginQueryHandler() queries.LoginQueryHandler {
	return queries.NewLoginQueryHandler(c.gormDB, c.hasher, c.signer)
}

func (c *CompositionRoot) CreateGetOrdersByCabinetQueryHandler() queries.GetOrdersByCabinetQueryHandler {
	return queries.NewGetOrdersByCabinetQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCountriesQueryHandler() queries.GetCountriesQueryHandler {
	return queries.NewGetCountriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetFlightsQueryHandler() queries.GetFlightsQueryHandler {
	return queries.NewGetFlightsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShopsQueryHandler() queries.GetShopsQueryHandler {
	return queries.NewGetShopsQueryHandler(c.gormDB)
}

// CreateCabinetResolver maps an authenticated account ID to its cabinet code.
func (c *CompositionRoot) CreateCabinetResolver() httpin.CabinetResolver {
	return func(ctx context.Context, accountID kernel.UUID) (kernel.CabinetID, error) {
		uow := c.uowFactory.Create()
		acc, err := uow.AccountRepository().Get(ctx, accountID)
		if err != nil {
			return kernel.CabinetID{}, err
		}
		return acc.CabinetID(), nil
	}
}

// CreateHTTPServer assembles the HTTP surface over all handlers.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.ServerDeps{
		Signer:          c.signer,
		ResolveCabinet:  c.CreateCabinetResolver(),
		Register:        c.CreateRegisterAccountCommandHandler(),
		TopUp:           c.CreateTopUpBalanceCommandHandler(),
		CreateOrder:     c.CreateCreateOrderCommandHandler(),
		PayOrder:        c.CreatePayOrderCommandHandler(),
		UpdateStatus:    c.CreateUpdateOrderStatusCommandHandler(),
		Declare:         c.CreateDeclareOrderCommandHandler(),
		DeleteOrder:     c.CreateDeleteOrderCommandHandler(),
		CreateCountry:   c.CreateCreateCountryCommandHandler(),
		DeleteCountry:   c.CreateDeleteCountryCommandHandler(),
		CreateFlight:    c.CreateCreateFlightCommandHandler(),
		DeleteFlight:    c.CreateDeleteFlightCommandHandler(),
		CreateShop:      c.CreateCreateShopCommandHandler(),
		DeleteShop:      c.CreateDeleteShopCommandHandler(),
		Login:           c.CreateLoginQueryHandler(),
		OrdersByCabinet: c.CreateGetOrdersByCabinetQueryHandler(),
		AllOrders:       c.CreateGetAllOrdersQueryHandler(),
		Countries:       c.CreateGetCountriesQueryHandler(),
		Flights:         c.CreateGetFlightsQueryHandler(),
		Shops:           c.CreateGetShopsQueryHandler(),
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) countryUoWFactory() commands.CountryUoWFactory {
	return FuncCountryUoWFactory(func() commands.CountryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) flightUoWFactory() commands.FlightUoWFactory {
	return FuncFlightUoWFactory(func() commands.FlightUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) shopUoWFactory() commands.ShopUoWFactory {
	return FuncShopUoWFactory(func() commands.ShopUoW {
		return c.uowFactory.Create()
	})
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncSettlementUoWFactory func() commands.SettlementUoW

func (f FuncSettlementUoWFactory) Create() commands.SettlementUoW {
	return f()
}

type FuncOrderEntryUoWFactory func() commands.OrderEntryUoW

func (f FuncOrderEntryUoWFactory) Create() commands.OrderEntryUoW {
	return f()
}

type FuncCountryUoWFactory func() commands.CountryUoW

func (f FuncCountryUoWFactory) Create() commands.CountryUoW {
	return f()
}

type FuncFlightUoWFactory func() commands.FlightUoW

func (f FuncFlightUoWFactory) Create() commands.FlightUoW {
	return f()
}

type FuncShopUoWFactory func() commands.ShopUoW

func (f FuncShopUoWFactory) Create() commands.ShopUoW {
	return f()
}
