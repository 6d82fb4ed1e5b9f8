//go:build optargs

package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jkelleyrtp/optargs"
)

var (
	// NewOrder constructs an order with keywords.
	NewOrder = optargs.StructPtr[Order]()

	// Quote describes an order in words.
	Quote = optargs.Func[string](quote)
)

func newServer() *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.GET("/orders/:symbol", func(c echo.Context) error {
		qty, err := strconv.Atoi(c.QueryParam("qty"))
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid qty")
		}

		symbol := c.Param("symbol")
		if s := c.QueryParam("limit"); s != "" {
			limit, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
			}
			return c.JSON(http.StatusOK, NewOrder(optargs.Kw("Symbol", symbol), optargs.Kw("Qty", qty), optargs.Kw("Limit", limit)))
		}
		return c.JSON(http.StatusOK, NewOrder(optargs.Kw("Note", "market order"), optargs.Kw("Symbol", symbol), optargs.Kw("Qty", qty)))
	})

	e.GET("/quotes/:symbol", func(c echo.Context) error {
		symbol := c.Param("symbol")
		qty := 1
		return c.String(http.StatusOK, Quote(symbol, qty))
	})
	return e
}

func get(e *echo.Echo, target string) string {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return fmt.Sprintf("%d %s", rec.Code, rec.Body.String())
}

func main() {
	e := newServer()

	// Output: 200 {"symbol":"GME","qty":10,"limit":420.69,"note":null}
	fmt.Print(get(e, "/orders/GME?qty=10&limit=420.69"))

	// Output: 200 {"symbol":"AMC","qty":5,"limit":null,"note":"market order"}
	fmt.Print(get(e, "/orders/AMC?qty=5"))

	// Output: 200 buy 1 AMC at market
	fmt.Println(get(e, "/quotes/AMC"))

	// Output: buy 100 GME at $9.50
	fmt.Println(Quote(optargs.Kw("qty", 100), optargs.Kw("limit", 9.5), optargs.Kw("symbol", "GME")))
}
