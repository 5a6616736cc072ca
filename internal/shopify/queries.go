package shopify

// RecentOrdersQuery fetches the most recent page of orders with the customer
// and line-item products needed to match buyers of a product. Only the first
// 100 orders are visible to a run; older orders are not paged in.
const RecentOrdersQuery = `
query getRecentOrders {
  orders(first: 100) {
    edges {
      node {
        customer {
          id
          email
        }
        lineItems(first: 10) {
          edges {
            node {
              product {
                id
              }
            }
          }
        }
      }
    }
  }
}
`

// ProductsQuery fetches products for the picker UI
const ProductsQuery = `
query getProducts {
  products(first: 50) {
    edges {
      node {
        id
        title
      }
    }
  }
}
`
