package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"hotchick-orders/config"
	"hotchick-orders/models"
	"hotchick-orders/services"
	"hotchick-orders/store"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const menuPageSize = 8

// Bot drives the ordering flow: browse menu, build a cart, pick a payment
// method, submit. Each chat owns one in-memory cart; updates are handled
// one at a time off the updates channel, so a cart is never touched
// concurrently.
type Bot struct {
	api    *tgbotapi.BotAPI
	cfg    *config.Config
	log    *zap.Logger
	store  store.Store
	ledger store.Ledger

	carts   map[int64]*models.Cart
	cartsMu sync.Mutex
}

func New(cfg *config.Config, logger *zap.Logger, st store.Store, ledger store.Ledger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:    api,
		cfg:    cfg,
		log:    logger,
		store:  st,
		ledger: ledger,
		carts:  make(map[int64]*models.Cart),
	}, nil
}

func (b *Bot) setBotCommands() error {
	cfg := tgbotapi.SetMyCommandsConfig{
		Commands: []tgbotapi.BotCommand{
			{Command: "start", Description: "Welcome"},
			{Command: "menu", Description: "Browse the menu"},
			{Command: "cart", Description: "Current order summary"},
			{Command: "orders", Description: "Order history"},
		},
	}
	_, err := b.api.Request(cfg)
	return err
}

func (b *Bot) Start() {
	_ = b.setBotCommands()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.CallbackQuery != nil {
			b.handleCallback(update.CallbackQuery)
			continue
		}
		if update.Message == nil {
			continue
		}
		msg := update.Message
		text := strings.TrimSpace(msg.Text)

		switch text {
		case "/start":
			b.handleStart(msg.Chat.ID)
		case "/menu", "🍗 Menu":
			b.sendMenuPage(msg.Chat.ID, 0)
		case "/cart", "🛒 Cart":
			b.sendCart(msg.Chat.ID)
		case "/orders", "📒 Orders":
			b.sendLedger(msg.Chat.ID)
		}
	}
}

func (b *Bot) cart(chatID int64) *models.Cart {
	b.cartsMu.Lock()
	defer b.cartsMu.Unlock()
	c, ok := b.carts[chatID]
	if !ok {
		c = &models.Cart{}
		b.carts[chatID] = c
	}
	return c
}

func (b *Bot) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error("send_failed", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (b *Bot) sendWithKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error("send_failed", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (b *Bot) answerCallback(id, text string) {
	_, _ = b.api.Request(tgbotapi.NewCallback(id, text))
}

func (b *Bot) handleStart(chatID int64) {
	msg := tgbotapi.NewMessage(chatID, "🔥 The Hot Chick — Order Now\n\nPick items from the menu, then check out with Cash or UPI.")
	msg.ReplyMarkup = tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("🍗 Menu"),
			tgbotapi.NewKeyboardButton("🛒 Cart"),
			tgbotapi.NewKeyboardButton("📒 Orders"),
		),
	)
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error("send_failed", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func priceLabel(e models.MenuEntry) string {
	if !e.HasPortions() {
		return fmt.Sprintf("₹%d", e.FixedPrice)
	}
	parts := make([]string, 0, len(e.Portions))
	for _, p := range e.Portions {
		parts = append(parts, fmt.Sprintf("₹%d", p))
	}
	return strings.Join(parts, "/")
}

func (b *Bot) sendMenuPage(chatID int64, page int) {
	total := len(models.Menu)
	pages := (total + menuPageSize - 1) / menuPageSize
	if page < 0 {
		page = 0
	}
	if page >= pages {
		page = pages - 1
	}
	start := page * menuPageSize
	end := start + menuPageSize
	if end > total {
		end = total
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for i := start; i < end; i++ {
		e := models.Menu[i]
		label := fmt.Sprintf("%s — %s", e.Name, priceLabel(e))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, fmt.Sprintf("item:%d", i)),
		))
	}
	var nav []tgbotapi.InlineKeyboardButton
	if page > 0 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("⬅️ Prev", fmt.Sprintf("menu:%d", page-1)))
	}
	if page < pages-1 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("Next ➡️", fmt.Sprintf("menu:%d", page+1)))
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}

	text := fmt.Sprintf("🍗 Menu (page %d/%d)", page+1, pages)
	b.sendWithKeyboard(chatID, text, tgbotapi.NewInlineKeyboardMarkup(rows...))
}

func (b *Bot) sendPortionPicker(chatID, itemIdx int64, entry models.MenuEntry) {
	var btns []tgbotapi.InlineKeyboardButton
	for _, opt := range services.PriceOptions(entry) {
		btns = append(btns, tgbotapi.NewInlineKeyboardButtonData(
			fmt.Sprintf("%s: ₹%d", opt.Label, opt.UnitPrice),
			fmt.Sprintf("opt:%d:%d", itemIdx, opt.Index),
		))
	}
	kb := tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(btns...))
	b.sendWithKeyboard(chatID, fmt.Sprintf("Select portion for %s:", entry.Name), kb)
}

func (b *Bot) sendQuantityPicker(chatID, itemIdx, optIdx int64, entry models.MenuEntry) {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for q := 1; q <= services.MaxQuantity; q++ {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(
			strconv.Itoa(q),
			fmt.Sprintf("qty:%d:%d:%d", itemIdx, optIdx, q),
		))
		if len(row) == 5 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	b.sendWithKeyboard(chatID, fmt.Sprintf("Quantity for %s:", entry.Name), tgbotapi.NewInlineKeyboardMarkup(rows...))
}

func cartText(cart *models.Cart) string {
	if len(cart.Items) == 0 {
		return "🛒 Your cart is empty. Add something from the menu!"
	}
	var sb strings.Builder
	sb.WriteString("🛒 Current Order Summary\n\n")
	for i, it := range cart.Items {
		sb.WriteString(fmt.Sprintf("%d. %d x %s %s= ₹%d\n", i+1, it.Quantity, it.ItemName, spaced(it.PortionNote), it.LineTotal))
	}
	sb.WriteString(fmt.Sprintf("\n💵 Current Total: ₹%d", services.CartTotal(cart)))
	return sb.String()
}

func spaced(note string) string {
	if note == "" {
		return ""
	}
	return note + " "
}

func (b *Bot) sendCart(chatID int64) {
	cart := b.cart(chatID)
	if len(cart.Items) == 0 {
		b.send(chatID, cartText(cart))
		return
	}
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Checkout", "checkout"),
			tgbotapi.NewInlineKeyboardButtonData("🗑 Empty cart", "cart:clear"),
		),
	)
	b.sendWithKeyboard(chatID, cartText(cart), kb)
}

func (b *Bot) sendPaymentPicker(chatID int64) {
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💵 Cash", "pay:"+models.PaymentCash),
			tgbotapi.NewInlineKeyboardButtonData("📱 UPI", "pay:"+models.PaymentUPI),
		),
	)
	b.sendWithKeyboard(chatID, "Payment method:", kb)
}

func (b *Bot) handleCallback(cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		return
	}
	chatID := cb.Message.Chat.ID
	data := cb.Data
	parts := strings.Split(data, ":")

	switch parts[0] {
	case "menu":
		if len(parts) != 2 {
			return
		}
		page, _ := strconv.Atoi(parts[1])
		b.answerCallback(cb.ID, "")
		b.sendMenuPage(chatID, page)

	case "item":
		if len(parts) != 2 {
			return
		}
		idx, _ := strconv.Atoi(parts[1])
		entry, err := services.MenuEntryAt(idx)
		if err != nil {
			b.answerCallback(cb.ID, "Unknown item")
			return
		}
		b.answerCallback(cb.ID, "")
		if entry.HasPortions() {
			b.sendPortionPicker(chatID, int64(idx), entry)
		} else {
			b.sendQuantityPicker(chatID, int64(idx), 0, entry)
		}

	case "opt":
		if len(parts) != 3 {
			return
		}
		idx, _ := strconv.Atoi(parts[1])
		opt, _ := strconv.Atoi(parts[2])
		entry, err := services.MenuEntryAt(idx)
		if err != nil {
			b.answerCallback(cb.ID, "Unknown item")
			return
		}
		b.answerCallback(cb.ID, "")
		b.sendQuantityPicker(chatID, int64(idx), int64(opt), entry)

	case "qty":
		if len(parts) != 4 {
			return
		}
		idx, _ := strconv.Atoi(parts[1])
		opt, _ := strconv.Atoi(parts[2])
		qty, _ := strconv.Atoi(parts[3])
		entry, err := services.MenuEntryAt(idx)
		if err != nil {
			b.answerCallback(cb.ID, "Unknown item")
			return
		}
		line, err := services.AddItem(b.cart(chatID), entry, opt, qty)
		if err != nil {
			b.answerCallback(cb.ID, "Invalid selection")
			b.log.Error("add_item_failed", zap.Int64("chat_id", chatID), zap.Error(err))
			return
		}
		b.answerCallback(cb.ID, fmt.Sprintf("Added %d x %s", line.Quantity, line.ItemName))
		b.sendCart(chatID)

	case "cart":
		if len(parts) == 2 && parts[1] == "clear" {
			services.ClearCart(b.cart(chatID))
			b.answerCallback(cb.ID, "Cart emptied")
			b.send(chatID, "🗑 Cart emptied.")
		}

	case "checkout":
		if len(b.cart(chatID).Items) == 0 {
			b.answerCallback(cb.ID, "Add at least one item!")
			return
		}
		b.answerCallback(cb.ID, "")
		b.sendPaymentPicker(chatID)

	case "pay":
		if len(parts) != 2 {
			return
		}
		b.answerCallback(cb.ID, "")
		b.submitOrder(chatID, parts[1])
	}
}

func (b *Bot) submitOrder(chatID int64, paymentMethod string) {
	cart := b.cart(chatID)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(b.cfg.Store.TimeoutSeconds)*time.Second)
	defer cancel()

	order, err := services.SubmitOrder(ctx, cart, paymentMethod, b.store, time.Now())
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			b.send(chatID, "⚠️ Add at least one item!")
			return
		}
		b.log.Error("order_submit_failed",
			zap.Int64("chat_id", chatID),
			zap.String("backend", b.cfg.Store.Backend),
			zap.Error(err))
		// Cart stays as-is so the user can retry without re-entering items.
		b.send(chatID, "❌ Could not save your order. Your cart is untouched — please try again.")
		return
	}

	b.log.Info("order_created",
		zap.String("order_id", order.ID),
		zap.Int64("total", order.TotalAmount),
		zap.String("payment", order.PaymentMethod))

	var sb strings.Builder
	sb.WriteString("🎉 Order Created!\n\n")
	sb.WriteString(fmt.Sprintf("Order ID: %s\n", order.ID))
	sb.WriteString(fmt.Sprintf("Date & Time: %s\n", order.CreatedAt))
	sb.WriteString(fmt.Sprintf("Items: %s\n", order.ItemsSummary))
	sb.WriteString(fmt.Sprintf("💵 Total: ₹%d\n", order.TotalAmount))
	sb.WriteString(fmt.Sprintf("Payment: %s", order.PaymentMethod))
	if b.cfg.Store.Backend == config.BackendSimulated {
		sb.WriteString("\n\n(Demo mode — the order was not written to a live sheet.)")
	}
	b.send(chatID, sb.String())
}

func (b *Bot) sendLedger(chatID int64) {
	if b.ledger == nil {
		b.send(chatID, "📒 Order history is not available with this setup.")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(b.cfg.Store.TimeoutSeconds)*time.Second)
	defer cancel()

	rows, err := b.ledger.FetchAll(ctx)
	if err != nil {
		b.log.Error("ledger_fetch_failed", zap.Error(err))
		b.send(chatID, "❌ Could not load order history. Please try again later.")
		return
	}
	if len(rows) == 0 {
		b.send(chatID, "📒 No orders yet.")
		return
	}

	// Full fetch, trimmed for chat: show the most recent rows only.
	const show = 10
	startAt := 0
	if len(rows) > show {
		startAt = len(rows) - show
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📒 Orders (%d total, last %d)\n", len(rows), len(rows)-startAt))
	for _, row := range rows[startAt:] {
		sb.WriteString("\n" + strings.Join(row, " | "))
	}
	b.send(chatID, sb.String())
}
